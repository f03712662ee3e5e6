package mailer

import "fmt"

const (
	VerificationSubject  = "Confirmation email for verification"
	PasswordResetSubject = "Confirmation email for password reset"
)

// VerificationEmailBody renders the signup verification email.
func VerificationEmailBody(code string) string {
	return fmt.Sprintf(`
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f7; padding: 20px; color: #333;">
<table width="100%%" cellpadding="0" cellspacing="0" border="0" style="max-width: 600px; margin: auto; background-color: #ffffff; padding: 30px; border-radius: 8px; box-shadow: 0 2px 6px rgba(0,0,0,0.05);">
<tr>
<td>
<h2 style="color: #2089dc; margin-top: 0;">Verify Your Email Address</h2>
<p style="font-size: 16px;">
Thank you for signing up for Cloudee. Please use the verification code below to complete your signup:
</p>
<div style="font-size: 28px; font-weight: bold; margin: 30px 0; color: #2089dc; text-align: center; letter-spacing: 2px;">
%s
</div>
<p style="font-size: 14px; color: #666;">
If you did not request this email, you can safely ignore it.
</p>
<br/>
<p style="font-size: 14px;">Best regards,<br/><strong>Cloudee Team</strong></p>
</td>
</tr>
</table>
</body>
</html>
`, code)
}

// PasswordResetEmailBody renders the password reset email.
func PasswordResetEmailBody(code string) string {
	return fmt.Sprintf(`
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f7; padding: 20px; color: #333;">
<table width="100%%" cellpadding="0" cellspacing="0" border="0" style="max-width: 600px; margin: auto; background-color: #ffffff; padding: 30px; border-radius: 8px; box-shadow: 0 2px 6px rgba(0,0,0,0.05);">
<tr>
<td>
<h2 style="color: #2089dc; margin-top: 0;">Reset Your Password</h2>
<p style="font-size: 16px;">Hi there,</p>
<p style="font-size: 16px;">
We received a request to reset the password associated with this email address.
Use the verification code below to proceed:
</p>
<div style="font-size: 28px; font-weight: bold; margin: 30px 0; color: #2089dc; text-align: center; letter-spacing: 2px;">
%s
</div>
<p style="font-size: 14px; color: #666;">
If you didn't request a password reset, you can safely ignore this email.
</p>
<br/>
<p style="font-size: 14px;">Thanks,<br/><strong>Cloudee Team</strong></p>
</td>
</tr>
</table>
</body>
</html>
`, code)
}
