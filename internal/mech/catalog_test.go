package mech_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mechsim/internal/mech"
	"github.com/san-kum/mechsim/internal/ode"
)

var _ = Describe("Catalog", func() {
	var catalog *mech.Catalog

	BeforeEach(func() {
		catalog = mech.NewCatalog()
	})

	It("lists the three mechanical systems", func() {
		Expect(catalog.Systems()).To(Equal([]string{
			"pendulum", "rotational_inertia", "spring_mass_damper",
		}))
	})

	It("builds every listed system with default parameters", func() {
		for _, name := range catalog.Systems() {
			sys, err := catalog.New(name, nil)
			Expect(err).NotTo(HaveOccurred(), name)
			Expect(sys.Dim()).To(Equal(2), name)
		}
	})

	It("rejects unknown system names", func() {
		_, err := catalog.New("double_pendulum", nil)
		Expect(err).To(MatchError(ContainSubstring("unknown system")))
	})

	It("applies caller parameters over defaults", func() {
		sys, err := catalog.New("spring_mass_damper", map[string]float64{"mass": 3.0})
		Expect(err).NotTo(HaveOccurred())
		spring := sys.(*mech.SpringMassDamper)
		Expect(spring.Mass).To(Equal(3.0))
		Expect(spring.Damping).To(Equal(0.5))
		Expect(spring.Stiffness).To(Equal(2.0))
	})

	It("surfaces DomainError for meaningless parameters", func() {
		_, err := catalog.New("pendulum", map[string]float64{"length": 0})
		var domainErr *ode.DomainError
		Expect(errors.As(err, &domainErr)).To(BeTrue())
		Expect(domainErr.Param).To(Equal("length"))
	})

	Describe("Instance", func() {
		It("binds system, initial state and span into a valid instance", func() {
			inst, err := catalog.Instance("pendulum", nil, ode.State{0.5, 0}, ode.NewTimeSpan(20))
			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Name).To(Equal("pendulum"))
			Expect(inst.Span.Samples).To(Equal(ode.DefaultSamples))
			Expect(inst.Validate()).To(Succeed())
		})

		It("does not alias the caller's initial state", func() {
			x0 := ode.State{0.5, 0}
			inst, err := catalog.Instance("pendulum", nil, x0, ode.NewTimeSpan(20))
			Expect(err).NotTo(HaveOccurred())
			x0[0] = 99
			Expect(inst.X0[0]).To(Equal(0.5))
		})

		It("rejects an initial state of the wrong dimension", func() {
			_, err := catalog.Instance("pendulum", nil, ode.State{0.5}, ode.NewTimeSpan(20))
			Expect(err).To(MatchError(ode.ErrDimension))
		})

		It("rejects an invalid time span", func() {
			_, err := catalog.Instance("pendulum", nil, ode.State{0.5, 0}, ode.TimeSpan{End: -1, Samples: 10})
			var domainErr *ode.DomainError
			Expect(errors.As(err, &domainErr)).To(BeTrue())
		})
	})
})
