package services

import (
	"fmt"
	"html"
	"lumi_noir_server/lib"
	"lumi_noir_server/structs"
	"lumi_noir_server/structs/tables"
	"strings"
	"sync"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	client     *resend.Client
	clientOnce = sync.Once{}
)

type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	return &EmailService{
		logger: logger,
		cfg:    cfg,
		client: getEmailClient(cfg.Email.ApiKey),
	}
}

func getEmailClient(apiKey string) *resend.Client {
	clientOnce.Do(func() {
		client = resend.NewClient(apiKey)
	})
	return client
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := es.client.Emails.Send(params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// SendOrderConfirmation emails the customer their order summary. Errors are
// logged only; the order itself has already committed.
func (es *EmailService) SendOrderConfirmation(order *tables.Order, items []tables.OrderItem) {
	if es.cfg.Email.ApiKey == "" {
		es.logger.Debug("Email disabled, skipping order confirmation", gecho.Field("order_id", order.ID))
		return
	}

	body := orderConfirmationHTML(order, items)

	if err := es.SendEmail([]string{order.Email}, "Your Lumi Noir order", body); err != nil {
		es.logger.Warn("Failed to send order confirmation",
			gecho.Field("error", err),
			gecho.Field("order_id", order.ID),
		)
		return
	}

	es.logger.Info("Order confirmation sent", gecho.Field("order_id", order.ID))
}

// orderConfirmationHTML renders the confirmation email body. Customer-supplied
// values are escaped; they land in HTML the customer's mail client renders.
func orderConfirmationHTML(order *tables.Order, items []tables.OrderItem) string {
	var rows strings.Builder
	for _, item := range items {
		rows.WriteString(fmt.Sprintf(
			`<tr><td style="padding:8px 12px;">%s</td><td style="padding:8px 12px;text-align:center;">%d</td><td style="padding:8px 12px;text-align:right;">%s</td></tr>`,
			html.EscapeString(item.TitleSnapshot),
			item.Quantity,
			lib.FormatPrice(item.PriceCentsSnapshot*int64(item.Quantity), order.Currency),
		))
	}

	return fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head><meta charset="UTF-8"></head>
		<body style="font-family: Georgia, serif; color: #1a1a1a; max-width: 600px; margin: 0 auto;">
			<div style="background-color: #111; color: #fff; padding: 24px; text-align: center;">
				<h1 style="margin:0; font-weight: normal; letter-spacing: 2px;">Lumi Noir</h1>
			</div>
			<div style="padding: 24px;">
				<h2>Thank you for your order, %s</h2>
				<p>Your order <strong>%s</strong> has been received.</p>
				<table style="width:100%%; border-collapse: collapse;">
					<thead>
						<tr style="border-bottom: 1px solid #ddd; text-align:left;">
							<th style="padding:8px 12px;">Item</th>
							<th style="padding:8px 12px;text-align:center;">Qty</th>
							<th style="padding:8px 12px;text-align:right;">Amount</th>
						</tr>
					</thead>
					<tbody>%s</tbody>
					<tfoot>
						<tr style="border-top: 2px solid #111;">
							<td style="padding:8px 12px;" colspan="2"><strong>Total</strong></td>
							<td style="padding:8px 12px;text-align:right;"><strong>%s</strong></td>
						</tr>
					</tfoot>
				</table>
				<p>We will be in touch once your order ships.</p>
			</div>
			<div style="text-align:center; padding: 16px; color: #888; font-size: 12px;">
				Lumi Noir
			</div>
		</body>
		</html>`,
		html.EscapeString(order.CustomerName),
		order.ID.String(),
		rows.String(),
		lib.FormatPrice(order.TotalCents, order.Currency),
	)
}
