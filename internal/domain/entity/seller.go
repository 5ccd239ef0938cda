package entity

// Seller — контрагент из внешнего стора. Сервис селлеров не создаёт,
// только резолвит по каноническому коду.
type Seller struct {
	RecordID   string `json:"record_id"`
	Code       string `json:"code"` // канонический вид: SE-00007
	WebhookURL string `json:"webhook_url,omitempty"`
}
