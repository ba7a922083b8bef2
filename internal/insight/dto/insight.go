package dto

import "healthtrack-backend/pkg/ai"

type MealSuggestionsResponse struct {
	Meals []ai.MealSuggestion `json:"meals"`
}

type GroceryRequest struct {
	Meals []string `json:"meals" binding:"required,min=1"`
}

type GroceryResponse struct {
	Items []string `json:"items"`
}

type ChatRequest struct {
	Message string           `json:"message" binding:"required"`
	History []ai.ChatMessage `json:"history"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
