package crypto

import "fmt"

/*
	Signature tokens tag vote provenance only: a token is a deterministic function of
	(signer, proposal identity), so signing the same proposal twice yields the same
	token and votes stay comparable. There is no key material and no verification;
	every token is trusted at face value by the simulation
*/

// tokenDigestLen is the number of hash hex characters embedded in a signature token
const tokenDigestLen = 6

// SignToken() produces the opaque signature token binding a signer to a proposal identity
func SignToken(signerID, proposalID string) string {
	digest := ShortHashString([]byte(signerID+"|"+proposalID), tokenDigestLen)
	return fmt.Sprintf("SIG(%s:%s)", signerID, digest)
}
