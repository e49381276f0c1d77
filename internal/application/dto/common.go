package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OkResponse respuesta mínima de mutaciones que no devuelven entidad
// (updates y deletes responden {ok:true}, como espera el front).
type OkResponse struct {
	Ok bool `json:"ok"`
}
