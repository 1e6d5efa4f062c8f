package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/idrisalani/knlLogistics/internal/entity"
)

// SendInvoice renders the invoice to a PDF and emails it to the client. A
// DRAFT invoice is marked SENT afterwards; re-sending an already sent invoice
// leaves its status alone.
func (s *Service) SendInvoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	inv, items, payments, err := s.InvoiceDetail(ctx, id)
	if err != nil {
		return entity.Invoice{}, err
	}

	if inv.Status == entity.InvoiceStatusCancelled {
		return entity.Invoice{}, fmt.Errorf("invoice %q: %w", inv.Number, entity.ErrAlreadyCancelled)
	}

	client, err := s.invoiceClient(ctx, inv)
	if err != nil {
		return entity.Invoice{}, err
	}

	if client == nil || client.Email == "" {
		return entity.Invoice{}, fmt.Errorf("invoice %q: %w", inv.Number, entity.ErrNoRecipient)
	}

	snapshot := entity.NewInvoiceSnapshot(inv, client, items, payments)

	document, err := s.renderer.RenderInvoice(snapshot)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("render invoice %q: %w", inv.Number, err)
	}

	msg := entity.EmailMessage{
		Subject:        fmt.Sprintf("Invoice %s from %s", inv.Number, s.company),
		Body:           s.invoiceEmailBody(inv, client),
		Recipients:     []string{client.Email},
		AttachmentName: fmt.Sprintf("%s.pdf", inv.Number),
		Attachment:     document,
	}

	err = s.notifier.Send(msg)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("send invoice %q to %q: %w", inv.Number, client.Email, err)
	}

	if inv.Status == entity.InvoiceStatusDraft {
		now := time.Now()

		err = s.repo.UpdateInvoiceStatus(ctx, inv.ID, entity.InvoiceStatusSent, now)
		if err != nil {
			return entity.Invoice{}, fmt.Errorf("mark invoice %q sent: %w", inv.Number, err)
		}

		inv.Status = entity.InvoiceStatusSent
		inv.UpdatedAt = now
	}

	slog.InfoContext(ctx, "invoice sent", "invoice", inv.Number, "recipient", client.Email)

	s.producer.SendInvoiceSent(ctx, inv.ID, inv.Number, client.Email)

	return inv, nil
}

// RenderInvoicePDF returns the invoice document without emailing it, for the
// download endpoint.
func (s *Service) RenderInvoicePDF(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	inv, items, payments, err := s.InvoiceDetail(ctx, id)
	if err != nil {
		return nil, "", err
	}

	client, err := s.invoiceClient(ctx, inv)
	if err != nil {
		return nil, "", err
	}

	snapshot := entity.NewInvoiceSnapshot(inv, client, items, payments)

	document, err := s.renderer.RenderInvoice(snapshot)
	if err != nil {
		return nil, "", fmt.Errorf("render invoice %q: %w", inv.Number, err)
	}

	return document, fmt.Sprintf("%s.pdf", inv.Number), nil
}

// MarkOverdueInvoices is the daily sweep: every unpaid DRAFT or SENT invoice
// whose due date is behind today's start of day becomes OVERDUE.
func (s *Service) MarkOverdueInvoices(ctx context.Context) error {
	now := time.Now()

	flipped, err := s.repo.SetOverdue(ctx, startOfDay(now), now)
	if err != nil {
		return fmt.Errorf("mark overdue invoices: %w", err)
	}

	if flipped > 0 {
		slog.InfoContext(ctx, "invoices marked overdue", "count", flipped)
	}

	return nil
}

// SendPaymentReminders emails a reminder for every OVERDUE invoice that has a
// client with an email address. One failing invoice does not stop the rest.
func (s *Service) SendPaymentReminders(ctx context.Context) error {
	invoices, err := s.repo.InvoicesByStatus(ctx, entity.InvoiceStatusOverdue)
	if err != nil {
		return fmt.Errorf("load overdue invoices: %w", err)
	}

	var errs []error

	for _, inv := range invoices {
		err = s.sendPaymentReminder(ctx, inv)
		if err != nil {
			errs = append(errs, fmt.Errorf("remind invoice %q: %w", inv.Number, err))
		}
	}

	return errors.Join(errs...)
}

func (s *Service) sendPaymentReminder(ctx context.Context, inv entity.Invoice) error {
	client, err := s.invoiceClient(ctx, inv)
	if err != nil {
		return err
	}

	if client == nil || client.Email == "" {
		slog.WarnContext(ctx, "skipping reminder, no recipient", "invoice", inv.Number)
		return nil
	}

	msg := entity.EmailMessage{
		Subject:    fmt.Sprintf("Payment reminder: invoice %s is overdue", inv.Number),
		Body:       s.reminderEmailBody(inv, client),
		Recipients: []string{client.Email},
	}

	err = s.notifier.Send(msg)
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "payment reminder sent", "invoice", inv.Number, "recipient", client.Email)

	return nil
}

func (s *Service) invoiceClient(ctx context.Context, inv entity.Invoice) (*entity.Client, error) {
	if inv.ClientID == uuid.Nil {
		return nil, nil
	}

	client, err := s.repo.Client(ctx, inv.ClientID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("get client %q: %w", inv.ClientID, err)
	}

	return &client, nil
}

func (s *Service) invoiceEmailBody(inv entity.Invoice, client *entity.Client) string {
	due := "on receipt"
	if inv.DueDate != nil {
		due = "by " + inv.DueDate.Format("2 January 2006")
	}

	return fmt.Sprintf(
		"Dear %s,\n\n"+
			"Please find attached invoice %s for %s, due %s.\n\n"+
			"Kindly make payment using the details on the invoice and quote the "+
			"invoice number as your payment reference.\n\n"+
			"Thank you for your business.\n\n"+
			"%s",
		client.Name, inv.Number, entity.FormatNaira(inv.Total), due, s.company,
	)
}

func (s *Service) reminderEmailBody(inv entity.Invoice, client *entity.Client) string {
	overdueFor := ""
	if inv.DueDate != nil {
		days := int(time.Since(*inv.DueDate).Hours() / 24)
		overdueFor = fmt.Sprintf(" It was due on %s (%d days ago).", inv.DueDate.Format("2 January 2006"), days)
	}

	return fmt.Sprintf(
		"Dear %s,\n\n"+
			"This is a friendly reminder that invoice %s for %s remains unpaid.%s\n\n"+
			"The outstanding balance is %s. Please arrange payment at your earliest "+
			"convenience, or contact us if you have already paid.\n\n"+
			"%s",
		client.Name, inv.Number, entity.FormatNaira(inv.Total), overdueFor,
		entity.FormatNaira(inv.Outstanding), s.company,
	)
}
