package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"golang.org/x/oauth2"
)

// authState is echoed back by Google on the consent redirect.
const authState = "calendar-assistant"

// LoadToken reads an OAuth token stored by SaveToken.
func LoadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrTokenMissing
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", err)
	}
	return &tok, nil
}

// SaveToken writes tok to path, readable by the owner only.
func SaveToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create token file: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// AuthCodeURL returns the consent page URL for the one-time interactive grant.
func AuthCodeURL(cfg *oauth2.Config) string {
	return cfg.AuthCodeURL(authState, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// ExchangeAndSave trades an authorization code for a token and stores it at tokenPath.
func ExchangeAndSave(ctx context.Context, cfg *oauth2.Config, code, tokenPath string) (*oauth2.Token, error) {
	tok, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	if err := SaveToken(tokenPath, tok); err != nil {
		return nil, err
	}
	return tok, nil
}

// fileTokenSource writes every newly minted token back to disk so a refresh survives restarts.
type fileTokenSource struct {
	mu   sync.Mutex
	path string
	src  oauth2.TokenSource
	last string
}

func newFileTokenSource(path string, initial *oauth2.Token, src oauth2.TokenSource) *fileTokenSource {
	return &fileTokenSource{
		path: path,
		src:  oauth2.ReuseTokenSource(initial, src),
		last: initial.AccessToken,
	}
}

func (f *fileTokenSource) Token() (*oauth2.Token, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	tok, err := f.src.Token()
	if err != nil {
		return nil, err
	}
	if tok.AccessToken != f.last {
		if err := SaveToken(f.path, tok); err != nil {
			return nil, err
		}
		f.last = tok.AccessToken
	}
	return tok, nil
}
