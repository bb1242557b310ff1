package dto

type CrearMesaRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=60"`
}

type ActualizarMesaRequest struct {
	Nombre string  `json:"nombre" validate:"omitempty,min=1,max=60"`
	Estado *string `json:"estado" validate:"omitempty,oneof=abierta cerrada"`
}

type MesaResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Estado string `json:"estado"`
}
