package system_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"minirack-dashboard/internal/system"
	"minirack-dashboard/internal/system/systemfakes"
)

var _ = Describe("Controller", func() {
	var (
		commander  *systemfakes.FakeCommander
		controller *system.Controller
	)

	BeforeEach(func() {
		commander = &systemfakes.FakeCommander{}
		controller = system.NewController("eero-dashboard", commander, zerolog.New(GinkgoWriter))
	})

	It("restarts the service through systemctl", func() {
		Expect(controller.Restart(context.Background())).To(Succeed())

		Expect(commander.StartCallCount()).To(Equal(1))
		name, args := commander.StartArgsForCall(0)
		Expect(name).To(Equal("sudo"))
		Expect(args).To(Equal([]string{"systemctl", "restart", "eero-dashboard"}))
	})

	It("reboots the host", func() {
		Expect(controller.Reboot(context.Background())).To(Succeed())

		name, args := commander.StartArgsForCall(0)
		Expect(name).To(Equal("sudo"))
		Expect(args).To(Equal([]string{"reboot"}))
	})

	It("reports commands that cannot be started", func() {
		commander.StartReturns(errors.New("executable file not found"))

		err := controller.Restart(context.Background())

		Expect(err).To(MatchError(ContainSubstring("executable file not found")))
	})

	It("does nothing for a cancelled request", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		Expect(controller.Reboot(ctx)).To(MatchError(context.Canceled))
		Expect(commander.StartCallCount()).To(BeZero())
	})
})
