package web

import (
	"strings"
	"testing"
	"time"
)

func Test_loginRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     loginRequest
		wantErr bool
	}{
		{
			name:    "ok",
			req:     loginRequest{Email: "admin@test.fr", Password: "secret"},
			wantErr: false,
		},
		{
			name:    "missing email",
			req:     loginRequest{Password: "secret"},
			wantErr: true,
		},
		{
			name:    "missing password",
			req:     loginRequest{Email: "admin@test.fr"},
			wantErr: true,
		},
		{
			name:    "missing both",
			req:     loginRequest{},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.req.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_eventRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     eventRequest
		wantErr bool
	}{
		{
			name:    "ok",
			req:     eventRequest{Title: "Soirée salsa", StartsAt: time.Now()},
			wantErr: false,
		},
		{
			name:    "missing title",
			req:     eventRequest{StartsAt: time.Now()},
			wantErr: true,
		},
		{
			name:    "missing date",
			req:     eventRequest{Title: "Soirée salsa"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.req.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_contactRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     contactRequest
		wantErr bool
	}{
		{
			name:    "ok",
			req:     contactRequest{Name: "Jean", Email: "jean@example.com", Message: "bonjour"},
			wantErr: false,
		},
		{
			name:    "missing name",
			req:     contactRequest{Email: "jean@example.com", Message: "bonjour"},
			wantErr: true,
		},
		{
			name:    "missing email",
			req:     contactRequest{Name: "Jean", Message: "bonjour"},
			wantErr: true,
		},
		{
			name:    "bad email",
			req:     contactRequest{Name: "Jean", Email: "not-an-address", Message: "bonjour"},
			wantErr: true,
		},
		{
			name:    "missing message",
			req:     contactRequest{Name: "Jean", Email: "jean@example.com"},
			wantErr: true,
		},
		{
			name:    "message too long",
			req:     contactRequest{Name: "Jean", Email: "jean@example.com", Message: strings.Repeat("a", maxContactMessageLen+1)},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.req.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_infoRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     infoRequest
		wantErr bool
	}{
		{
			name:    "ok",
			req:     infoRequest{Name: "Asso Danse", Email: "contact@assodanse.fr"},
			wantErr: false,
		},
		{
			name:    "email optional",
			req:     infoRequest{Name: "Asso Danse"},
			wantErr: false,
		},
		{
			name:    "missing name",
			req:     infoRequest{Email: "contact@assodanse.fr"},
			wantErr: true,
		},
		{
			name:    "bad email",
			req:     infoRequest{Name: "Asso Danse", Email: "nope"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.req.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_joinedMessage(t *testing.T) {
	err := contactRequest{}.Validate()
	msg := joinedMessage(err)
	for _, want := range []string{errNameRequired.Error(), errEmailRequired.Error(), errMessageRequired.Error()} {
		if !strings.Contains(msg, want) {
			t.Errorf("joinedMessage() = %q, missing %q", msg, want)
		}
	}
}
