package apperror

import "errors"

// Kinds of entity validation failures. They are checked in this order.
var (
	ErrNotContainNeededProperty     = errors.New("NOT_CONTAIN_NEEDED_PROPERTY")
	ErrNotMeetDataTypeSpecification = errors.New("NOT_MEET_DATA_TYPE_SPECIFICATION")
	ErrTitleLimitChar               = errors.New("TITLE_LIMIT_CHAR")
)

// DomainError is raised when an entity payload is rejected at construction.
// Its code has the form ENTITY.KIND, e.g. ADD_THREAD.TITLE_LIMIT_CHAR.
type DomainError struct {
	Entity string
	Kind   error
}

func NewDomainError(entity string, kind error) *DomainError {
	return &DomainError{Entity: entity, Kind: kind}
}

func (e *DomainError) Code() string {
	return e.Entity + "." + e.Kind.Error()
}

func (e *DomainError) Error() string {
	return e.Code()
}

func (e *DomainError) Unwrap() error {
	return e.Kind
}

var domainMessages = map[string]string{
	"ADD_THREAD.NOT_CONTAIN_NEEDED_PROPERTY":           "tidak dapat membuat thread baru karena properti yang dibutuhkan tidak ada",
	"ADD_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION":      "tidak dapat membuat thread baru karena tipe data tidak sesuai",
	"ADD_THREAD.TITLE_LIMIT_CHAR":                      "tidak dapat membuat thread baru karena karakter judul melebihi batas limit",
	"ADD_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY":          "tidak dapat membuat komentar baru karena properti yang dibutuhkan tidak ada",
	"ADD_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION":     "tidak dapat membuat komentar baru karena tipe data tidak sesuai",
	"ADD_REPLY.NOT_CONTAIN_NEEDED_PROPERTY":            "tidak dapat membuat balasan baru karena properti yang dibutuhkan tidak ada",
	"ADD_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION":       "tidak dapat membuat balasan baru karena tipe data tidak sesuai",
	"ADD_LIKE.NOT_CONTAIN_NEEDED_PROPERTY":             "tidak dapat menyukai komentar karena properti yang dibutuhkan tidak ada",
	"ADD_LIKE.NOT_MEET_DATA_TYPE_SPECIFICATION":        "tidak dapat menyukai komentar karena tipe data tidak sesuai",
	"DETAIL_THREAD.NOT_CONTAIN_NEEDED_PROPERTY":        "thread tidak lengkap",
	"DETAIL_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY":       "komentar tidak lengkap",
	"DETAIL_REPLY.NOT_CONTAIN_NEEDED_PROPERTY":         "balasan tidak lengkap",
	"COMMENT_WITH_REPLIES.NOT_CONTAIN_NEEDED_PROPERTY": "komentar tidak lengkap",
}

// Translate turns an error into the message shown to API clients.
// Domain errors with a known code get a human readable sentence.
func Translate(err error) string {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		if msg, ok := domainMessages[domainErr.Code()]; ok {
			return msg
		}
		return domainErr.Code()
	}
	return err.Error()
}
