// ABOUTME: Tests for the credential stores
// ABOUTME: Round-trip, absence, and partial-record cleanup for memory and file stores

package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jagatix-comp/petshop-pos/internal/models"
)

func testUser() *models.User {
	return &models.User{
		ID:       "user-1",
		Name:     "Budi",
		Username: "budi",
		Role:     models.RoleAdmin,
		Tenant:   models.Tenant{ID: "tenant-1", Name: "Petshop Central"},
	}
}

// storeUnderTest lets the same suite run against every Store implementation.
func storeUnderTest(t *testing.T, name string) Store {
	t.Helper()
	switch name {
	case "mem":
		return NewMemStore()
	case "file":
		return NewFileStore(filepath.Join(t.TempDir(), "credentials.json"))
	default:
		t.Fatalf("unknown store %q", name)
		return nil
	}
}

func TestStoreRoundTrip(t *testing.T) {
	for _, name := range []string{"mem", "file"} {
		t.Run(name, func(t *testing.T) {
			store := storeUnderTest(t, name)

			require.NoError(t, store.Save("token-abc", testUser()))

			creds, err := store.Load()
			require.NoError(t, err)
			require.NotNil(t, creds)
			require.Equal(t, "token-abc", creds.AccessToken)
			require.Equal(t, "user-1", creds.User.ID)
			require.Equal(t, "budi", creds.User.Username)
		})
	}
}

func TestStoreLoadWhenAbsent(t *testing.T) {
	for _, name := range []string{"mem", "file"} {
		t.Run(name, func(t *testing.T) {
			store := storeUnderTest(t, name)

			creds, err := store.Load()
			require.NoError(t, err)
			require.Nil(t, creds)
		})
	}
}

func TestStoreClear(t *testing.T) {
	for _, name := range []string{"mem", "file"} {
		t.Run(name, func(t *testing.T) {
			store := storeUnderTest(t, name)
			require.NoError(t, store.Save("token-abc", testUser()))

			require.NoError(t, store.Clear())

			creds, err := store.Load()
			require.NoError(t, err)
			require.Nil(t, creds)

			// Clearing an already-empty store is fine.
			require.NoError(t, store.Clear())
		})
	}
}

func TestStoreSaveEmptyTokenClears(t *testing.T) {
	for _, name := range []string{"mem", "file"} {
		t.Run(name, func(t *testing.T) {
			store := storeUnderTest(t, name)
			require.NoError(t, store.Save("token-abc", testUser()))

			require.NoError(t, store.Save("", testUser()))

			creds, err := store.Load()
			require.NoError(t, err)
			require.Nil(t, creds)
		})
	}
}

func TestFileStoreClearsCorruptRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := NewFileStore(path)
	creds, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, creds)

	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr), "corrupt record should be removed")
}

func TestFileStoreClearsPartialRecord(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"token without user", `{"accessToken":"token-abc"}`},
		{"user without token", `{"user":{"id":"user-1","username":"budi"}}`},
		{"user without id", `{"accessToken":"token-abc","user":{"username":"budi"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "credentials.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o600))

			store := NewFileStore(path)
			creds, err := store.Load()
			require.NoError(t, err)
			require.Nil(t, creds)

			_, statErr := os.Stat(path)
			require.True(t, os.IsNotExist(statErr), "partial record should be removed")
		})
	}
}

func TestFileStoreFilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	store := NewFileStore(path)
	require.NoError(t, store.Save("token-abc", testUser()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestMemStoreCopiesUser(t *testing.T) {
	store := NewMemStore()
	user := testUser()
	require.NoError(t, store.Save("token-abc", user))

	user.Name = "mutated"

	creds, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "Budi", creds.User.Name)
}
