package mealplans

type MessageResponse struct {
	Message string `json:"message"`
} // @name Message
