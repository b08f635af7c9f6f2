package repository_test

import (
	"context"
	"errors"
	"strings"

	"custodian/internal/db"
	"custodian/internal/repository"
	"custodian/internal/repository/fake"
	"custodian/internal/secret"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("UserRepository", func() {
	var (
		repo        *repository.UserRepository
		fakeStorage *fake.Storage
		codec       *secret.Codec
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		var err error
		codec, err = secret.NewCodec(strings.Repeat("k", 32))
		Expect(err).NotTo(HaveOccurred())

		fakeStorage = new(fake.Storage)
		repo = repository.NewUserRepository(fakeStorage, codec)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("MigrateTables", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.MigrateTables()
		})

		When("migration succeeds", func() {
			It("should migrate every table", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(3))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.APIKey{}))
				Expect(tables[2]).To(BeAssignableToTypeOf(&repository.TransferRecord{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			newUser repository.NewUser
			user    repository.User
			err     error
		)

		BeforeEach(func() {
			newUser = repository.NewUser{
				Username:     "alice",
				PasswordHash: "hash",
				Address:      "0x9858EfFD232B4033E47d90003D41EC34EcaEda94",
				PrivateKey:   "1ab42cc412b618bdea3a599e3c9bae199ebf030895b039e9db1e30dafb12b727",
				Mnemonic:     "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
			}
		})

		JustBeforeEach(func() {
			user, err = repo.CreateUser(ctx, newUser)
		})

		It("should never write plaintext secrets", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeStorage.CreateCallCount()).To(Equal(1))

			_, record := fakeStorage.CreateArgsForCall(0)
			stored, ok := record.(*repository.User)
			Expect(ok).To(BeTrue())

			Expect(uuid.Validate(stored.ID)).To(Succeed())
			Expect(stored.Username).To(Equal("alice"))
			Expect(stored.Address).To(Equal(newUser.Address))
			Expect(stored.EncryptedPrivateKey).NotTo(ContainSubstring(newUser.PrivateKey))
			Expect(stored.EncryptedMnemonic).NotTo(ContainSubstring("abandon"))

			plainKey, decErr := codec.Decrypt(stored.EncryptedPrivateKey)
			Expect(decErr).NotTo(HaveOccurred())
			Expect(plainKey).To(Equal(newUser.PrivateKey))

			Expect(user).To(Equal(*stored))
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(db.ErrDuplicate)
			})

			It("should return ErrUserExists", func() {
				Expect(err).To(MatchError(repository.ErrUserExists))
			})
		})

		When("the mnemonic is missing", func() {
			BeforeEach(func() {
				newUser.Mnemonic = ""
			})

			It("should refuse to store the user", func() {
				Expect(err).To(MatchError(secret.ErrEmptyInput))
				Expect(fakeStorage.CreateCallCount()).To(BeZero())
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetWalletSecret", func() {
		var (
			userID     string
			walletData repository.WalletSecret
			err        error
			storedKey  string
		)

		BeforeEach(func() {
			userID = uuid.NewString()

			var encErr error
			storedKey, encErr = codec.Encrypt("deadbeef")
			Expect(encErr).NotTo(HaveOccurred())
			storedMnemonic, encErr := codec.Encrypt("some words")
			Expect(encErr).NotTo(HaveOccurred())

			fakeStorage.GetOneByStub = func(_ context.Context, column string, value any, dest any) error {
				user := dest.(*repository.User)
				*user = repository.User{
					ID:                  userID,
					Address:             "0xabc",
					EncryptedPrivateKey: storedKey,
					EncryptedMnemonic:   storedMnemonic,
				}
				return nil
			}
		})

		JustBeforeEach(func() {
			walletData, err = repo.GetWalletSecret(ctx, userID)
		})

		It("should decrypt the wallet", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(walletData).To(Equal(repository.WalletSecret{
				Address:    "0xabc",
				PrivateKey: "deadbeef",
				Mnemonic:   "some words",
			}))

			_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
			Expect(column).To(Equal("id"))
			Expect(value).To(Equal(userID))
		})

		When("the ciphertext was produced with another key", func() {
			BeforeEach(func() {
				other, codecErr := secret.NewCodec(strings.Repeat("x", 32))
				Expect(codecErr).NotTo(HaveOccurred())
				storedKey, codecErr = other.Encrypt("deadbeef")
				Expect(codecErr).NotTo(HaveOccurred())
			})

			It("should fail with a decryption error", func() {
				Expect(err).To(MatchError(secret.ErrDecryption))
				Expect(walletData).To(Equal(repository.WalletSecret{}))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = nil
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return ErrUserNotFound", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})
	})

	Describe("API keys", func() {
		It("stores only the hash and resolves by the raw key", func() {
			key, err := repo.CreateAPIKey(ctx, "user-1", "raw-secret", "ci")
			Expect(err).NotTo(HaveOccurred())
			Expect(key.KeyHash).To(Equal(codec.Hash("raw-secret")))
			Expect(key.KeyHash).NotTo(ContainSubstring("raw-secret"))

			fakeStorage.GetOneByStub = func(_ context.Context, column string, value any, dest any) error {
				switch d := dest.(type) {
				case *repository.APIKey:
					Expect(column).To(Equal("key_hash"))
					Expect(value).To(Equal(key.KeyHash))
					*d = key
				case *repository.User:
					Expect(column).To(Equal("id"))
					*d = repository.User{ID: value.(string), Username: "alice"}
				}
				return nil
			}

			user, err := repo.GetUserByAPIKey(ctx, "raw-secret")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal("user-1"))
		})

		It("reports unknown keys", func() {
			fakeStorage.GetOneByReturns(db.ErrNotFound)
			_, err := repo.GetUserByAPIKey(ctx, "nope")
			Expect(err).To(MatchError(repository.ErrAPIKeyNotFound))
		})
	})

	Describe("GetUserByUsername", func() {
		It("wraps storage errors", func() {
			fakeStorage.GetOneByReturns(fakeErr)
			_, err := repo.GetUserByUsername(ctx, "alice")
			Expect(err).To(MatchError(fakeErr))
			Expect(err).To(MatchError(ContainSubstring("get user by username")))
		})
	})
})
