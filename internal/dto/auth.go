package dto

type RegisterRequestDTO struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type LoginRequestDTO struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type AuthResponseDTO struct {
	Token string `json:"token"`
}
