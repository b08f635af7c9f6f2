package secret_test

import (
	"custodian/internal/secret"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const (
	hexKey   = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
	otherKey = "abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789"
)

var _ = Describe("Codec", func() {
	var (
		codec *secret.Codec
		err   error
	)

	BeforeEach(func() {
		codec, err = secret.NewCodec(hexKey)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("NewCodec", func() {
		It("rejects an empty key", func() {
			_, err := secret.NewCodec("")
			Expect(err).To(MatchError(secret.ErrMissingKey))
		})

		It("accepts a 32 byte key without warning", func() {
			Expect(codec.Weak()).To(BeFalse())

			raw, err := secret.NewCodec("0123456789abcdef0123456789abcdef")
			Expect(err).NotTo(HaveOccurred())
			Expect(raw.Weak()).To(BeFalse())
		})

		It("accepts a short key but flags it as weak", func() {
			short, err := secret.NewCodec("short-key")
			Expect(err).NotTo(HaveOccurred())
			Expect(short.Weak()).To(BeTrue())

			ciphertext, err := short.Encrypt("mnemonic words")
			Expect(err).NotTo(HaveOccurred())
			plaintext, err := short.Decrypt(ciphertext)
			Expect(err).NotTo(HaveOccurred())
			Expect(plaintext).To(Equal("mnemonic words"))
		})
	})

	Describe("Encrypt and Decrypt", func() {
		DescribeTable("round trips non-empty plaintext",
			func(plaintext string) {
				ciphertext, err := codec.Encrypt(plaintext)
				Expect(err).NotTo(HaveOccurred())
				Expect(ciphertext).NotTo(Equal(plaintext))

				decrypted, err := codec.Decrypt(ciphertext)
				Expect(err).NotTo(HaveOccurred())
				Expect(decrypted).To(Equal(plaintext))
			},
			Entry("private key", "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"),
			Entry("mnemonic", "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"),
			Entry("single byte", "x"),
			Entry("unicode", "pässwörd ✓"),
		)

		It("produces a different ciphertext on every call", func() {
			c1, err := codec.Encrypt("same")
			Expect(err).NotTo(HaveOccurred())
			c2, err := codec.Encrypt("same")
			Expect(err).NotTo(HaveOccurred())
			Expect(c1).NotTo(Equal(c2))
		})

		It("rejects empty plaintext", func() {
			_, err := codec.Encrypt("")
			Expect(err).To(MatchError(secret.ErrEmptyInput))
		})

		It("rejects empty ciphertext", func() {
			_, err := codec.Decrypt("")
			Expect(err).To(MatchError(secret.ErrDecryption))
		})

		It("fails with a different key instead of returning wrong plaintext", func() {
			other, err := secret.NewCodec(otherKey)
			Expect(err).NotTo(HaveOccurred())

			ciphertext, err := codec.Encrypt("private key")
			Expect(err).NotTo(HaveOccurred())

			plaintext, err := other.Decrypt(ciphertext)
			Expect(err).To(MatchError(secret.ErrDecryption))
			Expect(plaintext).To(BeEmpty())
		})

		It("fails on tampered ciphertext", func() {
			ciphertext, err := codec.Encrypt("private key")
			Expect(err).NotTo(HaveOccurred())

			last := ciphertext[len(ciphertext)-1]
			flipped := byte('0')
			if last == '0' {
				flipped = '1'
			}
			tampered := ciphertext[:len(ciphertext)-1] + string(flipped)

			_, err = codec.Decrypt(tampered)
			Expect(err).To(MatchError(secret.ErrDecryption))
		})

		It("fails on malformed input", func() {
			_, err := codec.Decrypt("not-hex!")
			Expect(err).To(MatchError(secret.ErrDecryption))

			_, err = codec.Decrypt("abcdef")
			Expect(err).To(MatchError(secret.ErrDecryption))
		})
	})

	Describe("Hash", func() {
		It("is deterministic and one-way", func() {
			h1 := codec.Hash("api-key")
			h2 := codec.Hash("api-key")
			Expect(h1).To(Equal(h2))
			Expect(h1).NotTo(ContainSubstring("api-key"))
			Expect(h1).To(HaveLen(64))
			Expect(codec.Hash("api-key-2")).NotTo(Equal(h1))
		})
	})

	Describe("Zero", func() {
		It("clears the buffer", func() {
			buf := []byte("secret")
			secret.Zero(buf)
			Expect(buf).To(Equal(make([]byte, 6)))
		})
	})
})
