package identity

import (
	"fmt"
	"strings"
)

// maxSuffixAttempts bounds the numeric escalation loop. The accounts
// unique constraint remains the source of truth; the loop is best
// effort against the usernames visible at derivation time.
const maxSuffixAttempts = 1000

// DeriveCredentials builds the application username from the personal
// name fields: lowercase first name, a dot, lowercase first surname.
// On collision the lowercase initial of the second surname is appended
// once; if that name is also taken, or there is no second surname, a
// numeric suffix escalates until a free name is found. The lookup must
// consult every account, active or not.
func DeriveCredentials(firstName, firstSurname, secondSurname, nationalID, emailDomain string, exists func(string) (bool, error)) (Credentials, error) {
	base := strings.ToLower(strings.TrimSpace(firstName)) + "." + strings.ToLower(strings.TrimSpace(firstSurname))

	username, err := resolveUsername(base, strings.TrimSpace(secondSurname), exists)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		Username:        username,
		InitialPassword: nationalID,
		InternalEmail:   username + "@" + emailDomain,
	}, nil
}

func resolveUsername(base, secondSurname string, exists func(string) (bool, error)) (string, error) {
	taken, err := exists(base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}

	if secondSurname != "" {
		// first rune, not first byte: surnames can start multibyte
		initial := strings.ToLower(string([]rune(secondSurname)[0]))
		candidate := base + "." + initial
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}

	for i := 1; i <= maxSuffixAttempts; i++ {
		candidate := fmt.Sprintf("%s%d", base, i)
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("no free username for base %q: %w", base, ErrAccountConflict)
}
