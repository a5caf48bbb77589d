package console

import (
	"bufio"
	"context"
	"io"
	"strings"
	"time"

	"github.com/storehub/backend/internal/client"
)

// Login walks the two-step login on the terminal: credentials first,
// then the verification code read from in. Typing "resend" asks for a
// new code once the cooldown has elapsed.
func (c *Console) Login(ctx context.Context, email, password string, in io.Reader) error {
	seq := client.NewLoginSequence(c.api)
	if err := seq.SubmitCredentials(ctx, email, password); err != nil {
		return err
	}

	// Advance the resend countdown in real time while we wait for input
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-ticker.C:
				seq.Tick()
			case <-done:
				return
			}
		}
	}()

	c.printf("A verification code has been sent. Enter it below.\n")
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())
		switch {
		case input == "":
			continue
		case input == "resend":
			if err := seq.Resend(ctx); err != nil {
				c.printf("Resend failed: %v (wait %ds)\n", err, seq.Countdown())
				continue
			}
			c.printf("A new code has been sent.\n")
		default:
			if err := seq.VerifyOTP(ctx, input); err != nil {
				c.printf("Verification failed: %v\n", err)
				if seq.Phase() == client.PhaseFailed {
					return err
				}
				continue
			}
			admin, _ := c.api.Session().Admin()
			target, _ := seq.Redirect()
			c.printf("Signed in as %s (%s) -> %s\n", admin.Name, admin.Email, target)
			return nil
		}
	}
	return scanner.Err()
}

// Register creates an account; it never signs the new account in
func (c *Console) Register(ctx context.Context, name, email, password, confirm string) error {
	seq := client.NewLoginSequence(c.api)
	admin, err := seq.Register(ctx, name, email, password, confirm)
	if err != nil {
		return err
	}
	c.printf("Account created for %s. Sign in with 'storectl login'.\n", admin.Email)
	return nil
}

// Logout revokes the session
func (c *Console) Logout(ctx context.Context) error {
	if err := c.api.Auth().Logout(ctx); err != nil {
		return err
	}
	c.printf("Signed out.\n")
	return nil
}

// WhoAmI prints the signed-in profile
func (c *Console) WhoAmI(ctx context.Context) error {
	admin, err := c.api.Auth().Me(ctx)
	if err != nil {
		return err
	}
	c.printf("%s <%s>\n", admin.Name, admin.Email)
	return nil
}
