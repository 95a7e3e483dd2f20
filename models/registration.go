package models

// KeyAlgorithmECDSAP256 is the only key algorithm the relay currently
// accepts. Registrations that omit keyAlgorithm default to it.
const KeyAlgorithmECDSAP256 = "ECDSA_P256_SHA256"

// DeviceKeyRegistration is the body of POST /register-device-key. The
// request is self-signed: the signature headers must verify against the
// PublicKeyPEM asserted here, proving possession of the private half.
type DeviceKeyRegistration struct {
	DeviceID     string `json:"deviceId"`
	PublicKeyPEM string `json:"publicKeyPem"`
	KeyAlgorithm string `json:"keyAlgorithm,omitempty"`
}

// DeviceKeyRecord is the stored trust anchor for one device. Records are
// write-once: re-registration with a different key is rejected, never
// overwritten.
type DeviceKeyRecord struct {
	DeviceID     string `json:"device_id"`
	PublicKeyPEM string `json:"public_key_pem"`
	KeyAlgorithm string `json:"key_algorithm"`
	UpdatedAt    int64  `json:"updated_at"`
}
