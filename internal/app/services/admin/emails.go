package admin

import "fmt"

// HTML bodies for account lifecycle notifications. Kept deliberately plain;
// the front end owns all richer presentation.

func approvalEmailBody() string {
	return `<h2>Your account has been approved</h2>
<p>Welcome to the GRC Platform. Your account request has been reviewed and approved by an administrator.</p>
<p>You can now sign in and begin your compliance assessments.</p>`
}

func rejectionEmailBody(reason string) string {
	return fmt.Sprintf(`<h2>Account request update</h2>
<p>Your account request has been reviewed and was not approved.</p>
<p>Reason: %s</p>
<p>If you believe this is an error, please contact your administrator.</p>`, reason)
}

func suspensionEmailBody(reason string) string {
	return fmt.Sprintf(`<h2>Account status update</h2>
<p>Your account has been suspended by an administrator.</p>
<p>Reason: %s</p>
<p>Please contact your administrator for further details.</p>`, reason)
}

func reactivationEmailBody() string {
	return `<h2>Your account has been reactivated</h2>
<p>Your account is active again. You can sign in and resume your assessments where you left off.</p>`
}

func createdEmailBody(role string) string {
	return fmt.Sprintf(`<h2>Your account has been created</h2>
<p>An administrator created an account for you with role: %s.</p>
<p>Please contact your administrator for next steps.</p>`, role)
}
