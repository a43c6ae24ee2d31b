package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"conferencecentral/internal/domain"
)

func TestProfileService_Get_CreatesFromIdentityClaims(t *testing.T) {
	profileRepo := newFakeProfileRepository()
	svc := NewProfileService(profileRepo)

	prof, err := svc.Get(context.Background(), testIdentity())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prof.UserID != "user-1" || prof.DisplayName != "Alice" || prof.MainEmail != "alice@example.com" {
		t.Errorf("expected profile from identity claims, got %+v", prof)
	}
	if prof.TeeShirtSize != domain.TeeShirtNotSpecified {
		t.Errorf("expected unspecified tee shirt size, got %q", prof.TeeShirtSize)
	}
	if len(profileRepo.created) != 1 {
		t.Fatalf("expected one profile created, got %d", len(profileRepo.created))
	}
}

func TestProfileService_Get_ReturnsExisting(t *testing.T) {
	now := time.Now()
	existing := domain.NewProfile("user-1", "Alice", "alice@example.com", domain.TeeShirtMM, now, now)
	existing.ID = "prof-1"
	profileRepo := newFakeProfileRepository(existing)
	svc := NewProfileService(profileRepo)

	prof, err := svc.Get(context.Background(), testIdentity())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prof.ID != "prof-1" || prof.TeeShirtSize != domain.TeeShirtMM {
		t.Errorf("expected the stored profile, got %+v", prof)
	}
	if len(profileRepo.created) != 0 {
		t.Error("expected no new profile to be created")
	}
}

func TestProfileService_Save(t *testing.T) {
	tests := []struct {
		name     string
		input    *domain.SaveProfileInput
		wantName string
		wantSize domain.TeeShirtSize
		wantErr  error
	}{
		{
			name:     "updates both fields",
			input:    &domain.SaveProfileInput{DisplayName: "Alice B", TeeShirtSize: domain.TeeShirtXLW},
			wantName: "Alice B",
			wantSize: domain.TeeShirtXLW,
		},
		{
			name:     "empty fields keep current values",
			input:    &domain.SaveProfileInput{},
			wantName: "Alice",
			wantSize: domain.TeeShirtMM,
		},
		{
			name:    "unknown tee shirt size",
			input:   &domain.SaveProfileInput{TeeShirtSize: "HUGE"},
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Now()
			existing := domain.NewProfile("user-1", "Alice", "alice@example.com", domain.TeeShirtMM, now, now)
			existing.ID = "prof-1"
			svc := NewProfileService(newFakeProfileRepository(existing))

			prof, err := svc.Save(context.Background(), testIdentity(), tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if prof.DisplayName != tt.wantName {
				t.Errorf("expected display name %q, got %q", tt.wantName, prof.DisplayName)
			}
			if prof.TeeShirtSize != tt.wantSize {
				t.Errorf("expected tee shirt size %q, got %q", tt.wantSize, prof.TeeShirtSize)
			}
		})
	}
}
