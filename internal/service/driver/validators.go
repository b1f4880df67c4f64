package driver

import (
	"strings"

	"marketplace/internal/entities"
)

func isValidServiceClass(class entities.ServiceClass) bool {
	return strings.TrimSpace(class.Category) != ""
}
