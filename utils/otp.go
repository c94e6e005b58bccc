package utils

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// generateSecureOTP generates a secure random OTP of the specified length.
// It returns a base32 encoded string (without padding) truncated to the desired length.
func generateSecureOTP(length int) (string, error) {
	numBytes := (length*5 + 7) / 8
	randomBytes := make([]byte, numBytes)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	otp := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(randomBytes)
	if len(otp) > length {
		otp = otp[:length]
	}
	return otp, nil
}

// SendEmailMessage delivers an OTP message to the account's address. The
// mail provider call is stubbed behind this function; for now the message is
// logged.
func SendEmailMessage(email, message string) error {
	GetLogger().Sugar().Infof("Sending email to %s: %s", email, message)
	return nil
}

// InitiatePasswordResetOTP generates an OTP, stores it in Redis with a
// 5-minute TTL keyed by email, and sends it to the account's address.
func InitiatePasswordResetOTP(email string) error {
	otp, err := generateSecureOTP(6)
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}
	ttl := 5 * time.Minute
	otpKey := fmt.Sprintf("otp:reset:%s", email)

	ctx := context.Background()
	client := GetOTPCacheClient()
	if client == nil {
		return fmt.Errorf("OTP cache client not initialized")
	}

	if err := client.Set(ctx, otpKey, otp, ttl).Err(); err != nil {
		GetLogger().Error("Failed to cache OTP", zap.Error(err))
		return fmt.Errorf("failed to initiate password reset OTP")
	}

	message := fmt.Sprintf("Your TutorHub password reset code is: %s. It expires in 5 minutes.", otp)
	if err := SendEmailMessage(email, message); err != nil {
		GetLogger().Error("Failed to send OTP email", zap.Error(err))
		return fmt.Errorf("failed to send OTP")
	}

	return nil
}

// VerifyPasswordResetOTP checks a provided OTP against the stored record and
// consumes it on success.
func VerifyPasswordResetOTP(email, providedOTP string) error {
	otpKey := fmt.Sprintf("otp:reset:%s", email)
	ctx := context.Background()
	client := GetOTPCacheClient()

	stored, err := client.Get(ctx, otpKey).Result()
	if err == redis.Nil {
		return fmt.Errorf("OTP expired or not found")
	}
	if err != nil {
		return fmt.Errorf("failed to retrieve OTP: %w", err)
	}
	if stored != providedOTP {
		return fmt.Errorf("incorrect OTP")
	}

	_ = client.Del(ctx, otpKey).Err()
	return nil
}
