package usecase

import (
	"context"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googlecal "google.golang.org/api/calendar/v3"

	"smart-todo/config"
	"smart-todo/internal/calendar"
	"smart-todo/internal/model"
	"smart-todo/pkg/gcalendar"
	"smart-todo/pkg/log"
)

type providerFactory struct {
	l     log.Logger
	oauth *oauth2.Config

	credentialsPath string

	mu     sync.Mutex
	server *gcalendar.Client
}

// NewProviderFactory resolves calendar clients from the caller's provider token,
// falling back to the server-wide credentials file.
func NewProviderFactory(l log.Logger, cfg config.GoogleCalendarConfig) calendar.ProviderFactory {
	return &providerFactory{
		l: l,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{googlecal.CalendarScope},
			Endpoint:     google.Endpoint,
		},
		credentialsPath: cfg.CredentialsPath,
	}
}

func (f *providerFactory) Provider(ctx context.Context, sc model.Scope) (calendar.Provider, error) {
	if sc.ProviderToken != "" {
		client, err := gcalendar.NewClientFromToken(ctx, f.oauth, &oauth2.Token{
			AccessToken:  sc.ProviderToken,
			RefreshToken: sc.ProviderRefreshToken,
		})
		if err == nil {
			return client, nil
		}
		f.l.Warnf(ctx, "calendar.usecase.Provider: provider token rejected for user %s: %v", sc.UserID, err)
	}
	return f.serverClient(ctx)
}

// serverClient is built once. A failed build is retried on the next call.
func (f *providerFactory) serverClient(ctx context.Context) (calendar.Provider, error) {
	if f.credentialsPath == "" {
		return nil, calendar.ErrAccessUnavailable
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.server != nil {
		return f.server, nil
	}

	// The service outlives the request that triggered its creation.
	client, err := gcalendar.NewClientFromCredentialsFile(context.WithoutCancel(ctx), f.credentialsPath)
	if err != nil {
		f.l.Warnf(ctx, "calendar.usecase.serverClient: %v", err)
		return nil, calendar.ErrAccessUnavailable
	}
	f.server = client
	return client, nil
}
