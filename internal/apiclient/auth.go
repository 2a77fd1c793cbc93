package apiclient

import (
	"context"
	"net/http"

	"github.com/kraviona/seller-console/internal/models"
)

// LoginUser is the user object inside a successful login reply. The token
// is the opaque credential every authenticated call carries afterwards.
type LoginUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

func (u LoginUser) Profile() models.Profile {
	return models.Profile{Name: u.Name, Email: u.Email}
}

type loginResponse struct {
	envelope
	User LoginUser `json:"user"`
}

// Login exchanges credentials for a session token. The server's message is
// returned for both outcomes so the caller can surface it.
func (c *Client) Login(ctx context.Context, email, password string) (LoginUser, string, error) {
	body := map[string]string{"email": email, "password": password}
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/user/password", body, false, &resp); err != nil {
		return LoginUser{}, GenericFailure, err
	}
	if err := resp.ok(); err != nil {
		return LoginUser{}, resp.Message, err
	}
	return resp.User, resp.Message, nil
}
