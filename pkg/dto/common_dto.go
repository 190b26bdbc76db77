package dto

import "time"

// ISODate is the layout of every date the API returns, e.g. 2021-08-08T07:19:09.775Z.
const ISODate = "2006-01-02T15:04:05.000Z"

func FormatDate(t time.Time) string {
	return t.UTC().Format(ISODate)
}

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Envelope wraps every JSON response body.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func Success(data any) Envelope {
	return Envelope{Status: StatusSuccess, Data: data}
}

func SuccessMessage(message string) Envelope {
	return Envelope{Status: StatusSuccess, Message: message}
}
