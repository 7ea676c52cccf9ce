package institution

// Record is the organization printed on an academic card.
type Record struct {
	Country string `json:"country"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Fallback is used when no catalog could be loaded.
var Fallback = Record{
	Country: "Uzbekistan",
	Name:    "Westminster International University in Tashkent",
	Address: "628, Kanaikhali, Natore",
}
