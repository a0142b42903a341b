// Package auth implements the identity core of the Logit-Gym backend:
// bearer token issuance and validation, credential verification, and
// user registration/login with gym scope derivation.
package auth
