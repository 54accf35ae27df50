package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
)

// PasswordResetEmail renders the password reset message for a given token
func PasswordResetEmail(frontendURL, toEmail, token string) (*Message, error) {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s&email=%s",
		frontendURL,
		url.QueryEscape(token),
		url.QueryEscape(toEmail),
	)

	tmpl, err := template.New("password_reset").Parse(passwordResetTemplate)
	if err != nil {
		return nil, err
	}

	data := struct {
		Email    string
		ResetURL string
	}{
		Email:    toEmail,
		ResetURL: resetURL,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}

	return &Message{
		To:      toEmail,
		Subject: "Restablecer contraseña - FranLead CRM",
		Body:    buf.String(),
		HTML:    true,
	}, nil
}

const passwordResetTemplate = `
<!DOCTYPE html>
<html lang="es">
<head>
    <meta charset="UTF-8">
    <title>Restablecer contraseña</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, sans-serif; background-color: #f4f7fa;">
    <table role="presentation" style="max-width: 600px; margin: 40px auto; background-color: #ffffff; border-radius: 12px;">
        <tr>
            <td style="background: #3b82f6; padding: 32px; text-align: center;">
                <h1 style="color: #ffffff; margin: 0; font-size: 24px;">FranLead CRM</h1>
            </td>
        </tr>
        <tr>
            <td style="padding: 32px;">
                <h2 style="color: #1a1a2e; margin: 0 0 16px 0;">Restablecer contraseña</h2>
                <p style="color: #4a5568; line-height: 1.6;">
                    Hemos recibido una solicitud para restablecer la contraseña de la cuenta
                    <strong>{{.Email}}</strong>. El enlace caduca en una hora.
                </p>
                <p style="margin: 24px 0;">
                    <a href="{{.ResetURL}}" style="display: inline-block; padding: 14px 28px; background: #3b82f6; color: #ffffff; text-decoration: none; border-radius: 8px;">
                        Restablecer contraseña
                    </a>
                </p>
                <p style="color: #718096; font-size: 14px; line-height: 1.6;">
                    Si no solicitaste este cambio puedes ignorar este correo; tu contraseña
                    seguirá siendo la misma.
                </p>
            </td>
        </tr>
    </table>
</body>
</html>
`
