package services

import (
	"context"
	"testing"
	"time"

	"securepay-portal/internal/adapters/persistence/models"
	"securepay-portal/internal/config"
	"securepay-portal/internal/pkg/jwt"
	"securepay-portal/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:        "unit-test-signing-secret-with-enough-bytes",
			ExpiryMinutes: 60,
		},
		Auth: config.AuthConfig{
			// bcrypt.MinCost keeps hashing fast in tests
			BcryptCost:       4,
			LoginMaxAttempts: 6,
			LoginWindow:      15 * time.Minute,
		},
	}
}

func newAuthFixture() (*AuthService, *fakeCustomerRepo, *fakeStaffRepo) {
	customerRepo := newFakeCustomerRepo()
	staffRepo := newFakeStaffRepo()
	svc := NewAuthService(customerRepo, staffRepo, testConfig())
	return svc, customerRepo, staffRepo
}

func signupInput() *SignupInput {
	return &SignupInput{
		FullName:      "John Doe",
		IDNumber:      "9001015800087",
		AccountNumber: "4000123456",
		Username:      "johndoe",
		Password:      "Secret@123",
	}
}

func TestCustomerSignup(t *testing.T) {
	svc, customerRepo, _ := newAuthFixture()
	ctx := context.Background()

	resp, err := svc.CustomerSignup(ctx, signupInput(), "")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "johndoe", resp.Username)
	assert.Equal(t, "4000123456", resp.AccountNumber)

	stored, err := customerRepo.GetByID(ctx, resp.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "Secret@123", stored.Password)
	assert.True(t, password.Verify("Secret@123", stored.Password))
	assert.Nil(t, stored.CreatedBy)
}

func TestCustomerSignupRecordsActingStaff(t *testing.T) {
	svc, customerRepo, _ := newAuthFixture()
	ctx := context.Background()

	resp, err := svc.CustomerSignup(ctx, signupInput(), "staff-42")
	require.NoError(t, err)

	stored, err := customerRepo.GetByID(ctx, resp.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.CreatedBy)
	assert.Equal(t, "staff-42", *stored.CreatedBy)
}

func TestCustomerSignupDuplicate(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.CustomerSignup(ctx, signupInput(), "")
	require.NoError(t, err)

	// same username, different account
	dup := signupInput()
	dup.AccountNumber = "4000999999"
	_, err = svc.CustomerSignup(ctx, dup, "")
	assert.ErrorIs(t, err, ErrCustomerExists)

	// same account, different username
	dup = signupInput()
	dup.Username = "janedoe"
	_, err = svc.CustomerSignup(ctx, dup, "")
	assert.ErrorIs(t, err, ErrCustomerExists)
}

func TestCustomerLogin(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.CustomerSignup(ctx, signupInput(), "")
	require.NoError(t, err)

	result, err := svc.CustomerLogin(ctx, &CustomerLoginInput{
		Username:      "johndoe",
		AccountNumber: "4000123456",
		Password:      "Secret@123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "johndoe", result.Customer.Username)

	claims, err := jwt.ValidateToken(result.Token, testConfig().JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, result.Customer.ID, claims.Subject)
	assert.Equal(t, jwt.RoleCustomer, claims.Role)
	assert.Equal(t, "4000123456", claims.AccountNumber)
}

func TestCustomerLoginFailsUniformly(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.CustomerSignup(ctx, signupInput(), "")
	require.NoError(t, err)

	tests := []struct {
		name  string
		input *CustomerLoginInput
	}{
		{"unknown username", &CustomerLoginInput{Username: "nobody", AccountNumber: "4000123456", Password: "Secret@123"}},
		{"wrong account number", &CustomerLoginInput{Username: "johndoe", AccountNumber: "4000999999", Password: "Secret@123"}},
		{"wrong password", &CustomerLoginInput{Username: "johndoe", AccountNumber: "4000123456", Password: "Wrong@123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.CustomerLogin(ctx, tt.input)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestStaffRegisterStartsPending(t *testing.T) {
	svc, _, staffRepo := newAuthFixture()
	ctx := context.Background()

	resp, err := svc.StaffRegister(ctx, &StaffRegisterInput{
		FullName: "Jane Reviewer",
		Username: "jreviewer",
		Password: "Secret@123",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, resp.Status)

	stored, err := staffRepo.GetByID(ctx, resp.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsDefaultAdmin)
}

func TestStaffRegisterDuplicateUsername(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	input := &StaffRegisterInput{FullName: "Jane Reviewer", Username: "jreviewer", Password: "Secret@123"}
	_, err := svc.StaffRegister(ctx, input)
	require.NoError(t, err)

	_, err = svc.StaffRegister(ctx, input)
	assert.ErrorIs(t, err, ErrStaffExists)
}

func TestStaffLoginByStatus(t *testing.T) {
	svc, _, staffRepo := newAuthFixture()
	ctx := context.Background()

	hash, err := password.Hash("Secret@123", 4)
	require.NoError(t, err)

	seed := func(username, status string) {
		require.NoError(t, staffRepo.Create(ctx, &models.Staff{
			Username: username,
			Password: hash,
			FullName: "Test Staff",
			Status:   status,
		}))
	}
	seed("pendinguser", models.StatusPending)
	seed("rejecteduser", models.StatusRejected)
	seed("approveduser", models.StatusApproved)

	_, err = svc.StaffLogin(ctx, "pendinguser", "Secret@123")
	assert.ErrorIs(t, err, ErrStaffPending)

	_, err = svc.StaffLogin(ctx, "rejecteduser", "Secret@123")
	assert.ErrorIs(t, err, ErrStaffRejected)

	result, err := svc.StaffLogin(ctx, "approveduser", "Secret@123")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)

	claims, err := jwt.ValidateToken(result.Token, testConfig().JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, jwt.RoleStaff, claims.Role)
	assert.Equal(t, "Test Staff", claims.FullName)
}

func TestStaffLoginWrongPassword(t *testing.T) {
	svc, _, staffRepo := newAuthFixture()
	ctx := context.Background()

	hash, err := password.Hash("Secret@123", 4)
	require.NoError(t, err)
	require.NoError(t, staffRepo.Create(ctx, &models.Staff{
		Username: "approveduser",
		Password: hash,
		FullName: "Test Staff",
		Status:   models.StatusApproved,
	}))

	_, err = svc.StaffLogin(ctx, "approveduser", "Wrong@123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.StaffLogin(ctx, "nobody", "Secret@123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateBootstrapAdmin(t *testing.T) {
	svc, _, staffRepo := newAuthFixture()
	ctx := context.Background()

	resp, err := svc.CreateBootstrapAdmin(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.Username)
	assert.Equal(t, models.StatusApproved, resp.Status)

	stored, err := staffRepo.GetByID(ctx, resp.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsDefaultAdmin)
	assert.True(t, password.Verify("Admin@123", stored.Password))

	// second call must refuse: staff records already exist
	_, err = svc.CreateBootstrapAdmin(ctx)
	assert.ErrorIs(t, err, ErrAlreadyBootstrapped)
}

func TestCreateBootstrapAdminRefusedWhenStaffExist(t *testing.T) {
	svc, _, staffRepo := newAuthFixture()
	ctx := context.Background()

	require.NoError(t, staffRepo.Create(ctx, &models.Staff{
		Username: "jreviewer",
		Password: "x",
		FullName: "Jane Reviewer",
		Status:   models.StatusPending,
	}))

	_, err := svc.CreateBootstrapAdmin(ctx)
	assert.ErrorIs(t, err, ErrAlreadyBootstrapped)
}
