package response

type LoginResponse struct {
	Token string `json:"token"`
}

type MeResponse struct {
	Email string `json:"email"`
}
