package config_test

import (
	"os"
	"time"

	"custodian/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NewApp", func() {
	var env map[string]string

	BeforeEach(func() {
		env = map[string]string{
			"API_PORT":               "8080",
			"ETH_NODE_URL":           "http://localhost:8545",
			"CHAIN_ID":               "11155111",
			"TOKEN_CONTRACT_ADDRESS": "0x00000000000000000000000000000000000000aa",
			"ENCRYPTION_KEY":         "0123456789abcdef0123456789abcdef",
			"DB_CONNECTION_URL":      "postgres://localhost/custodian",
			"JWT_SECRET":             "secret",
		}
	})

	JustBeforeEach(func() {
		for key, value := range env {
			GinkgoT().Setenv(key, value)
		}
	})

	It("loads required values and applies defaults", func() {
		cfg, err := config.NewApp()
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.Port).To(Equal("8080"))
		Expect(cfg.ChainID).To(Equal(int64(11155111)))
		Expect(cfg.ExplorerURL).To(Equal("https://etherscan.io"))
		Expect(cfg.ConfirmTimeout).To(Equal(3 * time.Minute))
		Expect(cfg.ConfirmPollInterval).To(Equal(2 * time.Second))
		Expect(cfg.SignerLockTTL).To(Equal(5 * time.Minute))
		Expect(cfg.RedisAddr).To(BeEmpty())
	})

	When("optional values are set", func() {
		BeforeEach(func() {
			env["CONFIRM_TIMEOUT"] = "45s"
			env["REDIS_ADDR"] = "localhost:6379"
		})

		It("uses them", func() {
			cfg, err := config.NewApp()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.ConfirmTimeout).To(Equal(45 * time.Second))
			Expect(cfg.RedisAddr).To(Equal("localhost:6379"))
		})
	})

	When("a required value is missing", func() {
		BeforeEach(func() {
			delete(env, "ENCRYPTION_KEY")
			Expect(os.Unsetenv("ENCRYPTION_KEY")).To(Succeed())
		})

		It("fails", func() {
			_, err := config.NewApp()
			Expect(err).To(MatchError(ContainSubstring("ENCRYPTION_KEY")))
		})
	})

	When("the chain id is not positive", func() {
		BeforeEach(func() {
			env["CHAIN_ID"] = "0"
		})

		It("fails validation", func() {
			_, err := config.NewApp()
			Expect(err).To(MatchError(ContainSubstring("CHAIN_ID must be positive")))
		})
	})

	When("the confirmation timeout is not positive", func() {
		BeforeEach(func() {
			env["CONFIRM_TIMEOUT"] = "0s"
		})

		It("fails validation", func() {
			_, err := config.NewApp()
			Expect(err).To(MatchError(ContainSubstring("CONFIRM_TIMEOUT")))
		})
	})

	When("the token contract is not an address", func() {
		BeforeEach(func() {
			env["TOKEN_CONTRACT_ADDRESS"] = "not-an-address"
		})

		It("fails validation", func() {
			_, err := config.NewApp()
			Expect(err).To(MatchError(ContainSubstring("TOKEN_CONTRACT_ADDRESS")))
		})
	})

	When("the signer lock can expire during a confirmation wait", func() {
		BeforeEach(func() {
			env["CONFIRM_TIMEOUT"] = "10m"
			env["SIGNER_LOCK_TTL"] = "1m"
		})

		It("fails validation", func() {
			_, err := config.NewApp()
			Expect(err).To(MatchError(ContainSubstring("SIGNER_LOCK_TTL")))
		})
	})

	When("the signer lock outlasts the confirmation wait", func() {
		BeforeEach(func() {
			env["CONFIRM_TIMEOUT"] = "10m"
			env["SIGNER_LOCK_TTL"] = "11m"
		})

		It("accepts it", func() {
			cfg, err := config.NewApp()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.SignerLockTTL).To(Equal(11 * time.Minute))
		})
	})
})
