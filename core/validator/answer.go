// core/validator/answer.go
package validator

// ExpectedCiphertext is the accepted secret after a pass through the standard
// machine. Regenerate it with `enigma encrypt` if the tables ever change.
const ExpectedCiphertext = "^}wbxIn>PRUb\"X'vTdec&oSW\\T`)L"
