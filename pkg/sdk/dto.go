package sdk

// Event mirrors the backend event record. Title is the natural key used
// for get/update/delete; Date is an ISO-8601 string, with or without a
// zone offset.
type Event struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// Fact mirrors the backend fact record
type Fact struct {
	ID      uint   `json:"id"`
	Content string `json:"content"`
}

// Joke mirrors the backend joke record
type Joke struct {
	ID      uint   `json:"id"`
	Content string `json:"content"`
}

// Quote mirrors the backend quote record
type Quote struct {
	ID      uint   `json:"id"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

// QuizItem mirrors the backend quiz record
type QuizItem struct {
	ID            uint     `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correct_option"`
}

// Department is one organizational unit in the about payload
type Department struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// About is the static club information payload
type About struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Founded     string       `json:"founded"`
	Mission     string       `json:"mission"`
	Departments []Department `json:"departments"`
	Activities  []string     `json:"activities"`
	Website     string       `json:"website"`
	Email       string       `json:"email"`
	Location    string       `json:"location"`
}
