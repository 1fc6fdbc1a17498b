package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/anbusan19/wealth-empire-sub001/internal/cache"
	"github.com/anbusan19/wealth-empire-sub001/internal/config"
	"github.com/anbusan19/wealth-empire-sub001/internal/model"
)

// ErrInvalidCIN is returned for identifiers that fail the format check
var ErrInvalidCIN = errors.New("invalid CIN format")

// cinPattern matches the 21-character MCA corporate identification number:
// listing flag, industry code, state, year, ownership class, serial.
var cinPattern = regexp.MustCompile(`^[LU][0-9]{5}[A-Z]{2}[0-9]{4}[A-Z]{3}[0-9]{6}$`)

// RegistryService fetches auxiliary company data for display next to a
// report. Lookups are independent of scoring; a failure here never touches
// a computed result.
type RegistryService struct {
	config        *config.RegistryConfig
	client        *http.Client
	registryCache cache.RegistryCache
}

// NewRegistryService creates a new registry service
func NewRegistryService(registryCache cache.RegistryCache) *RegistryService {
	cfg := config.DefaultRegistryConfig()
	return &RegistryService{
		config:        cfg,
		registryCache: registryCache,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// ValidCIN reports whether the identifier matches the CIN format
func ValidCIN(cin string) bool {
	return cinPattern.MatchString(cin)
}

// Lookup resolves a CIN to a company profile. Malformed identifiers are
// rejected before any network call. Registry errors fall back to a mock
// profile so the report page always has something to display.
func (s *RegistryService) Lookup(ctx context.Context, cin string) (*model.CompanyProfile, error) {
	cin = strings.ToUpper(strings.TrimSpace(cin))
	if !ValidCIN(cin) {
		return nil, ErrInvalidCIN
	}

	if cached, err := s.registryCache.Get(ctx, cin); err == nil && cached != nil {
		return cached, nil
	}

	profile := s.fetch(ctx, cin)
	if err := s.registryCache.Set(ctx, cin, profile); err != nil {
		log.Printf("failed to cache registry profile for %s: %v", cin, err)
	}
	return profile, nil
}

func (s *RegistryService) fetch(ctx context.Context, cin string) *model.CompanyProfile {
	if !s.config.IsEnabled() {
		return s.mockProfile(cin)
	}

	url := fmt.Sprintf("%s?key=%s", s.config.LookupEndpoint(cin), s.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return s.mockProfile(cin)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return s.mockProfile(cin)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return s.mockProfile(cin)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return s.mockProfile(cin)
	}

	var profile model.CompanyProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		return s.mockProfile(cin)
	}
	profile.CIN = cin
	profile.Source = "registry"
	return &profile
}

// mockProfile derives a deterministic placeholder from the CIN segments
func (s *RegistryService) mockProfile(cin string) *model.CompanyProfile {
	return &model.CompanyProfile{
		CIN:            cin,
		Name:           "Registered Company " + cin[15:],
		Status:         "Active",
		IncorporatedOn: cin[8:12],
		State:          cin[6:8],
		CompanyClass:   cin[12:15],
		Source:         "mock",
	}
}
