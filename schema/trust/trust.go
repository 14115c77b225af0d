// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package trust verifies a detached PKCS#7 signature over a schema
// bundle directory before the loader trusts it. Schema drops pulled
// from the data-mining pipeline that produces the XML description files
// are optionally signed; this package is the gate a loader consults
// when a signature file is present. It is never consulted for the
// common case of a local, unsigned schema directory.
package trust

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"

	"go.mozilla.org/pkcs7"
)

// ErrSignatureMismatch means the signature parsed but its signed content
// digest did not match the supplied schema payload.
var ErrSignatureMismatch = errors.New("trust: signature does not match schema content")

// VerifyDetached parses a detached PKCS#7 signature and checks that its
// signed content is the SHA-256 digest of payload. It does not validate
// the signing certificate's chain of trust; callers that need that do it
// against the returned PKCS7's Certificates themselves, mirroring how a caller of
// parseSecurityDirectory inspects pe.Certificates after the fact.
func VerifyDetached(signature, payload []byte) (*pkcs7.PKCS7, error) {
	p7, err := pkcs7.Parse(signature)
	if err != nil {
		return nil, fmt.Errorf("trust: parse pkcs7 signature: %w", err)
	}

	sum := sha256.Sum256(payload)
	p7.Content = sum[:]

	if err := p7.Verify(); err != nil {
		return nil, fmt.Errorf("trust: %w: %w", ErrSignatureMismatch, err)
	}
	return p7, nil
}

// VerifyDetachedFiles is VerifyDetached reading both inputs from disk:
// one signature file and one payload file, hashed as it is read.
func VerifyDetachedFiles(signaturePath, payloadPath string) (*pkcs7.PKCS7, error) {
	sig, err := os.ReadFile(signaturePath)
	if err != nil {
		return nil, fmt.Errorf("trust: read signature: %w", err)
	}

	f, err := os.Open(payloadPath)
	if err != nil {
		return nil, fmt.Errorf("trust: open payload: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return nil, fmt.Errorf("trust: hash payload: %w", err)
	}

	return verifyDigest(sig, h.Sum(nil))
}

func verifyDigest(signature, digest []byte) (*pkcs7.PKCS7, error) {
	p7, err := pkcs7.Parse(signature)
	if err != nil {
		return nil, fmt.Errorf("trust: parse pkcs7 signature: %w", err)
	}
	p7.Content = digest
	if err := p7.Verify(); err != nil {
		return nil, fmt.Errorf("trust: %w: %w", ErrSignatureMismatch, err)
	}
	return p7, nil
}
