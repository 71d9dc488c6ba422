package bitbucket

// Upstream payload shapes for the Bitbucket Server REST API (1.0). Only the
// fields this adapter consumes are modeled; every nested object is a pointer
// because the server omits them freely depending on entity state.

type User struct {
	Name         string `json:"name"`
	EmailAddress string `json:"emailAddress"`
	DisplayName  string `json:"displayName"`
	Slug         string `json:"slug"`
	Active       bool   `json:"active"`
}

type Project struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type Repository struct {
	Slug    string   `json:"slug"`
	Name    string   `json:"name"`
	Project *Project `json:"project"`
}

type Ref struct {
	ID         string      `json:"id"`
	DisplayID  string      `json:"displayId"`
	Repository *Repository `json:"repository"`
}

// Participant is an author or reviewer entry on a pull request.
type Participant struct {
	User     *User  `json:"user"`
	Role     string `json:"role"`
	Approved bool   `json:"approved"`
}

type PullRequest struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	State       string        `json:"state"`
	Open        bool          `json:"open"`
	CreatedDate int64         `json:"createdDate"` // epoch milliseconds
	UpdatedDate int64         `json:"updatedDate"` // epoch milliseconds
	Author      *Participant  `json:"author"`
	Reviewers   []Participant `json:"reviewers"`
	FromRef     *Ref          `json:"fromRef"`
	ToRef       *Ref          `json:"toRef"`
}

type userPage struct {
	Values []User `json:"values"`
}

type pullRequestPage struct {
	Values []PullRequest `json:"values"`
}

// Role selects which side of a pull request the inbox query filters on.
type Role string

const (
	RoleAuthor   Role = "AUTHOR"
	RoleReviewer Role = "REVIEWER"
)
