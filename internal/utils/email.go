package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"os"
	"sort"

	"github.com/wneessen/go-mail"
)

// Corps de l'email de confirmation de commande. Les champs arrivent en
// table plate clé → valeur, le template ne fait que les afficher.
var orderConfirmationTmpl = template.Must(template.New("order-confirmation").Parse(`
<!DOCTYPE html>
<html lang="fr">
<head>
	<meta charset="UTF-8">
	<title>Confirmation de commande</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Confirmation de votre commande</h2>
		<p>Bonjour,</p>
		<p>Votre commande a été confirmée avec succès.</p>

		<h3>Détails de la commande</h3>
		<table style="width: 100%; border-collapse: collapse; margin: 20px 0;">
			<tbody>
				{{range .Fields}}
				<tr>
					<td style="padding: 8px; border: 1px solid #ddd; font-weight: bold;">{{.Key}}</td>
					<td style="padding: 8px; border: 1px solid #ddd;">{{.Value}}</td>
				</tr>
				{{end}}
			</tbody>
		</table>

		<p style="margin-top: 30px; color: #555;">
			Cordialement,<br>
			<strong>L'équipe RotuPrint</strong>
		</p>
	</div>
</body>
</html>`))

type templateField struct {
	Key   string
	Value string
}

// SendOrderConfirmation envoie l'email de confirmation de commande.
// Les champs (numéro, total, remises...) sont passés en table plate et
// rendus dans l'ordre alphabétique des clés.
func SendOrderConfirmation(to string, fields map[string]string) error {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]templateField, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, templateField{Key: k, Value: fields[k]})
	}

	var buf bytes.Buffer
	if err := orderConfirmationTmpl.Execute(&buf, map[string]any{"Fields": rows}); err != nil {
		return fmt.Errorf("erreur exécution template: %v", err)
	}

	return sendMail(to, "✅ Commande confirmée - RotuPrint", buf.String())
}

func sendMail(to, subject, htmlBody string) error {
	msg := mail.NewMsg()

	if err := msg.From(os.Getenv("SMTP_FROM")); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail à", to)
	return client.DialAndSend(msg)
}
