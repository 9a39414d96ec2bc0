package crates

import "io"

// Run parses the input, applies it under the policy and returns the top
// label of every stack.
func Run(r io.Reader, policy Policy, opts ...Option) (string, error) {
	p, err := Parse(r)
	if err != nil {
		return "", err
	}
	ss, err := p.Run(policy, opts...)
	if err != nil {
		return "", err
	}
	return ss.Tops(), nil
}
