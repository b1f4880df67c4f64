package order

import (
	"strings"
	"time"

	"marketplace/internal/entities"
)

func isValidAddress(address string) bool {
	return strings.TrimSpace(address) != ""
}

func isValidPaymentMethod(method entities.PaymentMethodType) bool {
	switch method {
	case entities.PaymentCash, entities.PaymentWallet, entities.PaymentCard:
		return true
	default:
		return false
	}
}

func isValidPricingOption(option entities.PricingOptionType) bool {
	switch option {
	case entities.PricingAutoAccept, entities.PricingChooseOffer:
		return true
	default:
		return false
	}
}

// scheduledFor либо отсутствует (ASAP), либо в будущем.
func isValidSchedule(scheduledFor *time.Time, now time.Time) bool {
	return scheduledFor == nil || scheduledFor.After(now)
}
