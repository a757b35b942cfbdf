package auth

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage/db"
)

// GetDBUser retrieves the database user from context
func GetDBUser(c echo.Context) (*db.User, bool) {
	dbUser, ok := c.Get(DBUserKey).(*db.User)
	return dbUser, ok && dbUser != nil
}

// IsAuthenticated checks if the current request is authenticated
func IsAuthenticated(c echo.Context) bool {
	isAuth, _ := c.Get(IsAuthenticatedKey).(bool)
	return isAuth
}

func IsAdmin(c echo.Context) bool {
	dbUser, ok := GetDBUser(c)
	return ok && dbUser.IsAdmin
}

// GetUserID gets the database user ID of the signed-in shopper
func GetUserID(c echo.Context) (string, bool) {
	if dbUser, ok := GetDBUser(c); ok {
		return dbUser.ID, true
	}
	return "", false
}

// syncUserToDatabase upserts the Clerk user data to the local database
func syncUserToDatabase(ctx context.Context, queries *db.Queries, clerkUser *clerk.User) (*db.User, error) {
	email := getFirstEmail(clerkUser)
	firstName := stringValue(clerkUser.FirstName)
	lastName := stringValue(clerkUser.LastName)

	dbUser, err := queries.UpsertUserByClerkID(ctx, db.UpsertUserByClerkIDParams{
		ID:        ulid.Make().String(),
		ClerkID:   toNullString(clerkUser.ID),
		Email:     email,
		FirstName: toNullString(firstName),
		LastName:  toNullString(lastName),
		FullName:  buildFullName(firstName, lastName, stringValue(clerkUser.Username), email),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}
	return &dbUser, nil
}

func getFirstEmail(clerkUser *clerk.User) string {
	if len(clerkUser.EmailAddresses) == 0 {
		return ""
	}

	primaryID := stringValue(clerkUser.PrimaryEmailAddressID)
	for _, email := range clerkUser.EmailAddresses {
		if email.ID == primaryID {
			return email.EmailAddress
		}
	}

	return clerkUser.EmailAddresses[0].EmailAddress
}

func buildFullName(firstName, lastName, username, email string) string {
	switch {
	case firstName != "" && lastName != "":
		return firstName + " " + lastName
	case firstName != "":
		return firstName
	case lastName != "":
		return lastName
	case username != "":
		return username
	case email != "":
		return email
	}
	return "User"
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
