package handlers

import (
	"net/http"

	"restaurant-pos-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetStateMachineInfo documents the order lifecycle for clients
func GetStateMachineInfo(c *gin.Context) {
	transitions := []gin.H{}
	for _, t := range statemachine.AllTransitions() {
		transitions = append(transitions, gin.H{
			"from": t.From,
			"to":   t.To,
			"role": t.Role,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"order_statuses": []string{"open", "closed", "paid"},
		"item_statuses":  []string{"pending", "ready"},
		"transitions":    transitions,
	})
}
