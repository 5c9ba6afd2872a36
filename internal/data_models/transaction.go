package dto

type CombinedCreateRequest struct {
	User UserSeed `json:"user"`
	Task TaskSeed `json:"task"`
}

type UserSeed struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TaskSeed struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Project     string `json:"project"`
}
