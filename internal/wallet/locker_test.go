package wallet_test

import (
	"context"
	"time"

	"custodian/internal/wallet"

	"github.com/alicebob/miniredis/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const signerAddr = "0xAbCdEf0000000000000000000000000000000001"

var _ = Describe("MemoryLocker", func() {
	var locker *wallet.MemoryLocker

	BeforeEach(func() {
		locker = wallet.NewMemoryLocker()
	})

	It("blocks a second holder until release", func() {
		release, err := locker.Lock(context.Background(), signerAddr)
		Expect(err).NotTo(HaveOccurred())

		acquired := make(chan struct{})
		go func() {
			defer GinkgoRecover()
			second, err := locker.Lock(context.Background(), signerAddr)
			Expect(err).NotTo(HaveOccurred())
			close(acquired)
			second()
		}()

		Consistently(acquired, 50*time.Millisecond).ShouldNot(BeClosed())
		release()
		Eventually(acquired).Should(BeClosed())
	})

	It("treats addresses case-insensitively", func() {
		release, err := locker.Lock(context.Background(), signerAddr)
		Expect(err).NotTo(HaveOccurred())
		defer release()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err = locker.Lock(ctx, "0xabcdef0000000000000000000000000000000001")
		Expect(err).To(MatchError(context.DeadlineExceeded))
	})

	It("does not block different signers", func() {
		release, err := locker.Lock(context.Background(), signerAddr)
		Expect(err).NotTo(HaveOccurred())
		defer release()

		other, err := locker.Lock(context.Background(), "0x0000000000000000000000000000000000000002")
		Expect(err).NotTo(HaveOccurred())
		other()
	})

	It("tolerates a double release", func() {
		release, err := locker.Lock(context.Background(), signerAddr)
		Expect(err).NotTo(HaveOccurred())
		release()
		release()

		again, err := locker.Lock(context.Background(), signerAddr)
		Expect(err).NotTo(HaveOccurred())
		again()
	})
})

var _ = Describe("RedisLocker", func() {
	var (
		mr     *miniredis.Miniredis
		client *goredis.Client
		locker *wallet.RedisLocker
		key    string
	)

	BeforeEach(func() {
		var err error
		mr, err = miniredis.Run()
		Expect(err).NotTo(HaveOccurred())

		client = goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
		locker = wallet.NewRedisLocker(zap.NewNop().Sugar(), client, time.Minute)
		key = "signer-lock:0xabcdef0000000000000000000000000000000001"
	})

	AfterEach(func() {
		Expect(client.Close()).To(Succeed())
		mr.Close()
	})

	It("sets an expiring key while held and removes it on release", func() {
		release, err := locker.Lock(context.Background(), signerAddr)
		Expect(err).NotTo(HaveOccurred())

		Expect(mr.Exists(key)).To(BeTrue())
		Expect(mr.TTL(key)).To(Equal(time.Minute))

		release()
		Expect(mr.Exists(key)).To(BeFalse())
	})

	It("makes a second holder wait", func() {
		release, err := locker.Lock(context.Background(), signerAddr)
		Expect(err).NotTo(HaveOccurred())

		ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
		defer cancel()
		_, err = locker.Lock(ctx, signerAddr)
		Expect(err).To(MatchError(context.DeadlineExceeded))

		release()

		again, err := locker.Lock(context.Background(), signerAddr)
		Expect(err).NotTo(HaveOccurred())
		again()
	})

	It("does not release a lock taken over by another owner", func() {
		release, err := locker.Lock(context.Background(), signerAddr)
		Expect(err).NotTo(HaveOccurred())

		Expect(mr.Set(key, "someone-else")).To(Succeed())
		release()

		value, err := mr.Get(key)
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal("someone-else"))
	})

	It("extends the lease while held", func() {
		locker = wallet.NewRedisLocker(zap.NewNop().Sugar(), client, 300*time.Millisecond)
		release, err := locker.Lock(context.Background(), signerAddr)
		Expect(err).NotTo(HaveOccurred())
		defer release()

		mr.SetTTL(key, 10*time.Second)
		Eventually(func() time.Duration {
			return mr.TTL(key)
		}).Should(Equal(300 * time.Millisecond))
	})

	It("stops extending a lease it no longer owns", func() {
		locker = wallet.NewRedisLocker(zap.NewNop().Sugar(), client, 300*time.Millisecond)
		release, err := locker.Lock(context.Background(), signerAddr)
		Expect(err).NotTo(HaveOccurred())

		Expect(mr.Set(key, "someone-else")).To(Succeed())
		Consistently(func() time.Duration {
			return mr.TTL(key)
		}, 250*time.Millisecond).Should(BeZero())
		release()
	})

	It("reports an unreachable server", func() {
		mr.Close()
		_, err := locker.Lock(context.Background(), signerAddr)
		Expect(err).To(MatchError(ContainSubstring("redis set lock")))
	})
})
