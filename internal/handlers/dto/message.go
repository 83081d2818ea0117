package dto

type MessageRequest struct {
	ReceiverID string `json:"idReceptor" binding:"required,uuid"`
	Content    string `json:"contenido" binding:"required,max=1000"`
}
