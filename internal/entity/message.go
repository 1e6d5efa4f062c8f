package entity

// EmailMessage is the payload handed to the notifier. The attachment, when
// present, is an already-rendered document: the notifier never builds or
// recomputes invoice content.
type EmailMessage struct {
	Subject        string
	Body           string
	Recipients     []string
	AttachmentName string
	Attachment     []byte
}
