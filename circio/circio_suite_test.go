package circio_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestCircio(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Circio Suite")
}
