package response_models

// AskResponse carries the reply chunks in send order. Answers is empty when
// the reply was suppressed as a duplicate of the previous one.
type AskResponse struct {
	Answers []string `json:"answers"`
}

type DistrictsResponse struct {
	Kind      string   `json:"kind,omitempty"`
	Districts []string `json:"districts"`
}
