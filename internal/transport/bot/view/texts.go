package view

import (
	"errors"
	"fmt"

	"dealdesk/internal/domain"
	service "dealdesk/internal/domain/service/deal"
	"dealdesk/pkg/errcodes"
)

const (
	StartText = "Deal desk bot. Deal cards are posted here automatically.\n" +
		"Press a button on a card to claim a deal or to make a counter offer."

	HelpText = "How it works:\n" +
		"• Claim Deal — reply to the prompt with your seller code, e.g. 00007\n" +
		"• Make Offer — reply with your seller code and amount, e.g. 00007 95.50\n" +
		"The first valid claim wins, offers must undercut the lowest one by €2.50."

	ClaimPromptText = "Reply to this message with your seller code (digits only)."
	OfferPromptText = "Reply to this message with your seller code and offer amount,\n" +
		"for example: 00007 95.50"

	ExpiredPromptText = "This prompt has expired. Press the button on the card again."

	OfferUsageText = "Expected two values: seller code and amount, e.g. 00007 95.50"
)

func ClaimSuccessText(result *service.ClaimResult) string {
	return fmt.Sprintf("✅ Deal claimed by %s.\n%s is yours, the card is closed.",
		result.Seller.Code, result.Claim.ProductName)
}

func OfferAcceptedText(result *service.OfferResult) string {
	return fmt.Sprintf("💶 Offer of %s recorded for %s.",
		service.FormatAmount(result.Amount), result.Seller.Code)
}

func OfferRejectedText(result *service.OfferResult) string {
	return fmt.Sprintf("Offer of %s is too high: current lowest is %s, yours must be at most %s.",
		service.FormatAmount(result.Amount),
		service.FormatAmount(result.Verdict.Floor),
		service.FormatAmount(result.Verdict.MaxAllowed))
}

// ErrorText — человеческий текст для доменных отказов. Всё, что не доменный
// отказ, скрывается за общим сообщением.
func ErrorText(err error) string {
	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		return "Something went wrong, please try again."
	}

	switch appErr.Code {
	case errcodes.InvalidSellerCode:
		return "That does not look like a seller code. Digits only, e.g. 00007."
	case errcodes.SellerNotFound:
		return "Unknown seller code. Check it and try again."
	case errcodes.OrderNotFound:
		return "This card is no longer linked to an active deal."
	case errcodes.DealAlreadyClaimed:
		return "Too late, this deal has already been claimed."
	case errcodes.ClaimInProgress:
		return "Someone is claiming this deal right now, try again in a moment."
	case errcodes.InvalidOfferAmount:
		return "The amount must be a positive number, e.g. 95.50."
	default:
		return "Something went wrong, please try again."
	}
}
