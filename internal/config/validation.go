package config

import (
	"strings"

	derrors "git.home.luguber.info/inful/docslink/internal/errors"
)

// ValidateConfig rejects hosts that would produce malformed links.
func ValidateConfig(cfg *Config) error {
	if err := validateHost("docs.host", cfg.Docs.Host); err != nil {
		return err
	}
	return validateHost("docs.store_host", cfg.Docs.StoreHost)
}

func validateHost(field, host string) error {
	switch {
	case host == "":
		return nil
	case strings.Contains(host, "://"):
		return derrors.ValidationFailed(field, "host must not include a scheme")
	case strings.ContainsAny(host, "/?# "):
		return derrors.ValidationFailed(field, "host must be a bare hostname")
	}
	return nil
}
