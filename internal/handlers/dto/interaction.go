package dto

// The id fields keep the parameter names the mobile client already sends.

type CommentRequest struct {
	TargetID string `json:"idUsuarioComentado" binding:"required,uuid"`
	Content  string `json:"contenido" binding:"required,max=500"`
	// Optional paired score; when present comment and rating are written
	// in one transaction.
	Score *int `json:"puntuacion" binding:"omitempty,min=1,max=5"`
}

type CommentUpdateRequest struct {
	Content string `json:"contenido" binding:"required,max=500"`
}

type RatingRequest struct {
	TargetID string `json:"idUsuarioComentado" binding:"required,uuid"`
	Score    int    `json:"puntuacion" binding:"required,min=1,max=5"`
}
