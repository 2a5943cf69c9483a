package dtos

// VisitRequest is the visit form payload. Product is the multi-select.
type VisitRequest struct {
	Sales   string   `json:"sales"`
	Farm    string   `json:"farm"`
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Zip     string   `json:"zip"`
	City    string   `json:"city"`
	Mobile  string   `json:"mobile"`
	Cows    string   `json:"cows"`
	Eqt     string   `json:"eqt"`
	Brand   string   `json:"brand"`
	Product []string `json:"product"`
}

// LoginRequest is the credentials payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
