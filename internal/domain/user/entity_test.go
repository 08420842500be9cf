//go:build unit

package user_test

import (
	"strings"
	"testing"
	"time"

	"cosme-store/internal/domain/user"
	"cosme-store/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("lan.anh@example.com")
		name, _ := user.NewDisplayName("Lan Anh")
		expected := user.NewUser(email, "hashed_password", user.RoleCustomer, name, time.Now())

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
		assert.Empty(t, actual.Phone().Value())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid address",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "empty address",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing domain",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing at sign",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "customer",
				mutate: func(b *builder.UserBuilder) { b.WithRole("customer") },
			},
			{
				name:   "staff",
				mutate: func(b *builder.UserBuilder) { b.WithRole("staff") },
			},
			{
				name:   "admin",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
			},
			{
				name:   "unknown role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("operator") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "empty role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("profile validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "mobile with country code",
				mutate: func(b *builder.UserBuilder) { b.WithPhone("+84901234567") },
			},
			{
				name:   "mobile with spaces",
				mutate: func(b *builder.UserBuilder) { b.WithPhone("090 123 4567") },
			},
			{
				name:   "foreign number",
				mutate: func(b *builder.UserBuilder) { b.WithPhone("+1 555 0100") },
				errIs:  user.ErrInvalidPhone,
			},
			{
				name:   "blank display name",
				mutate: func(b *builder.UserBuilder) { b.WithDisplayName("  ") },
				errIs:  user.ErrInvalidDisplayName,
			},
			{
				name:   "display name too long",
				mutate: func(b *builder.UserBuilder) { b.WithDisplayName(strings.Repeat("a", 101)) },
				errIs:  user.ErrInvalidDisplayName,
			},
		})
	})

	t.Run("email is case-insensitive", func(t *testing.T) {
		e, err := user.NewEmail("  Lan.Anh@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "lan.anh@example.com", e.Value())
	})

	t.Run("update profile", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		name, _ := user.NewDisplayName("Lan")
		phone, _ := user.NewPhone("0901234567")
		later := u.UpdatedAt().Add(time.Hour)

		u.UpdateProfile(name, phone, later)

		assert.Equal(t, "Lan", u.DisplayName().Value())
		assert.Equal(t, "0901234567", u.Phone().Value())
		assert.Equal(t, later, u.UpdatedAt())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
