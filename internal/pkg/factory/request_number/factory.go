package request_number

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	prefix    = "REQ-"
	hexLength = 10
)

// RequestNumberFactory выдает короткие человекочитаемые номера заказов
// вида REQ-1A2B3C4D5E. Номер строится из случайного UUID, уникальность
// страхует уникальный индекс на request_number.
type RequestNumberFactory struct{}

func New() *RequestNumberFactory {
	return &RequestNumberFactory{}
}

func (f *RequestNumberFactory) Next() string {
	id := uuid.New()
	hex := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))
	return fmt.Sprintf("%s%s", prefix, hex[:hexLength])
}
