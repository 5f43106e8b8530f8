package discord

// go generate: mockery --name InviteFetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/linesmerrill/invite-inspector/config"
	"github.com/linesmerrill/invite-inspector/models"
)

// UserAgent is sent with every API request, in the form Discord asks bots to use
var UserAgent = "DiscordBot (https://github.com/linesmerrill/invite-inspector, dev)"

const maxBodySize = 1 << 20

// ErrBodyTooLarge is wrapped by the DecodeError for an invite body over the read limit
var ErrBodyTooLarge = fmt.Errorf("response too large: over %d bytes", maxBodySize)

// InviteFetcher contains the methods to look up invites on the Discord API
type InviteFetcher interface {
	FetchInvite(ctx context.Context, code string) (*models.Invite, error)
}

type inviteClient struct {
	client  *http.Client
	baseURL string
	token   string
}

// NewInviteClient initializes a new InviteFetcher with the provided config and http client
func NewInviteClient(conf *config.Config, client *http.Client) InviteFetcher {
	return &inviteClient{
		client:  client,
		baseURL: conf.APIBaseURL,
		token:   conf.Token,
	}
}

type apiError struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func (c *inviteClient) FetchInvite(ctx context.Context, code string) (*models.Invite, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(code), nil)
	if err != nil {
		return nil, &FetchError{Code: code, Err: err}
	}
	req.Header.Set("Authorization", "Bot "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &FetchError{Code: code, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, &FetchError{Code: code, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		fetchErr := &FetchError{Code: code, StatusCode: resp.StatusCode}
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil {
			fetchErr.Message = apiErr.Message
		}
		zap.S().Debugw("invite endpoint returned an error",
			"code", code,
			"status", resp.StatusCode,
			"message", fetchErr.Message)
		return nil, fetchErr
	}

	if len(body) > maxBodySize {
		return nil, &DecodeError{Code: code, Err: ErrBodyTooLarge}
	}

	invite, err := decodeInvite(body)
	if err != nil {
		return nil, &DecodeError{Code: code, Err: err}
	}
	return invite, nil
}

// endpoint builds the invite URL for code. A query pasted with the code, as in
// event links, is sent along with with_counts instead of being escaped into
// the path.
func (c *inviteClient) endpoint(code string) string {
	path, rawQuery, _ := strings.Cut(code, "?")
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set("with_counts", "true")
	return fmt.Sprintf("%s/invites/%s?%s", c.baseURL, url.PathEscape(path), query.Encode())
}
