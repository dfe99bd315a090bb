package catalog

// chapters is the course content table, covering the second-semester
// physics sequence (oscillations through diffraction).
var chapters = []Chapter{
	{
		ID:    "15",
		Title: "Ch 15. Oscillations",
		Summary: `
## Simple Harmonic Motion

Simple harmonic motion (SHM) is periodic motion where the restoring force is proportional to displacement.

**Key Concepts:**
- Period $(T)$ and Frequency $(f)$
- Angular Frequency $\omega = 2\pi f = \frac{2\pi}{T}$
- Energy in SHM: $E = \frac{1}{2}kA^2$ (constant)
`,
		YouTubeID: "dQw4w9WgXcQ",
		Formulas: []Formula{
			{Name: "Displacement (SHM)", LaTeX: `x(t) = A \cos(\omega t + \phi)`},
			{Name: "Velocity (SHM)", LaTeX: `v(t) = -A\omega \sin(\omega t + \phi)`},
			{Name: "Acceleration (SHM)", LaTeX: `a(t) = -A\omega^2 \cos(\omega t + \phi)`},
			{Name: "Angular Frequency", LaTeX: `\omega = \sqrt{\frac{k}{m}}`},
			{Name: "Period (Spring)", LaTeX: `T = 2\pi\sqrt{\frac{m}{k}}`},
			{Name: "Period (Pendulum)", LaTeX: `T = 2\pi\sqrt{\frac{L}{g}}`},
			{Name: "Total Energy", LaTeX: `E = \frac{1}{2}kA^2 = \frac{1}{2}mv_{max}^2`},
		},
		Problems: []Problem{
			{
				Question: "A 0.50 kg mass attached to a spring oscillates with an amplitude of 0.20 m and a period of 1.5 s. Calculate (a) the spring constant and (b) the maximum speed.",
				Answer: `
**Given:**
- $m = 0.50$ kg
- $A = 0.20$ m
- $T = 1.5$ s

**(a) Spring constant:**

$$T = 2\pi\sqrt{\frac{m}{k}} \implies k = \frac{4\pi^2 m}{T^2}$$

$$k = \frac{4\pi^2 (0.50)}{(1.5)^2} = 8.77 \text{ N/m}$$

**(b) Maximum speed:**

$$v_{max} = A\omega = A \cdot \frac{2\pi}{T} = 0.20 \cdot \frac{2\pi}{1.5} = 0.84 \text{ m/s}$$
`,
			},
			{
				Question: `A pendulum has a length of 1.0 m. What is its period on Earth $(g = 9.8 \text{ m/s}^2)$?`,
				Answer: `
**Given:**
- $L = 1.0$ m
- $g = 9.8$ m/s²

**Solution:**

$$T = 2\pi\sqrt{\frac{L}{g}} = 2\pi\sqrt{\frac{1.0}{9.8}} = 2.01 \text{ s}$$
`,
			},
		},
	},
	{
		ID:    "16",
		Title: "Ch 16. Waves I",
		Summary: `
## Traveling Waves

A wave is a disturbance that propagates through space and time, transferring energy without transferring matter.

**Key Concepts:**
- Wavelength $(\lambda)$, Frequency $(f)$, Wave speed $(v)$
- Wave equation: $v = f\lambda$
- Transverse vs Longitudinal waves
`,
		Formulas: []Formula{
			{Name: "Wave Speed", LaTeX: `v = f\lambda = \frac{\lambda}{T}`},
			{Name: "Wave Function", LaTeX: `y(x,t) = A \sin(kx - \omega t + \phi)`},
			{Name: "Wave Number", LaTeX: `k = \frac{2\pi}{\lambda}`},
			{Name: "Speed on String", LaTeX: `v = \sqrt{\frac{T}{\mu}}`},
			{Name: "Power Transmitted", LaTeX: `P = \frac{1}{2}\mu v \omega^2 A^2`},
		},
		Problems: []Problem{
			{
				Question: "A wave has a frequency of 60 Hz and a wavelength of 0.50 m. Calculate the wave speed.",
				Answer: `
**Given:**
- $f = 60$ Hz
- $\lambda = 0.50$ m

**Solution:**

$$v = f\lambda = (60)(0.50) = 30 \text{ m/s}$$
`,
			},
		},
	},
	{
		ID:    "17",
		Title: "Ch 17. Waves II",
		Summary: `
## Sound Waves & Interference

Sound waves are longitudinal pressure waves. This chapter covers sound intensity, interference, and the Doppler effect.

**Key Topics:**
- Sound intensity and decibels
- Standing waves and resonance
- Doppler effect
`,
		Formulas: []Formula{
			{Name: "Sound Intensity", LaTeX: `I = \frac{P}{4\pi r^2}`},
			{Name: "Sound Level (dB)", LaTeX: `\beta = 10 \log_{10}\left(\frac{I}{I_0}\right)`},
			{Name: "Doppler (Approaching)", LaTeX: `f' = f\frac{v + v_D}{v - v_S}`},
			{Name: "Beat Frequency", LaTeX: `f_{beat} = |f_1 - f_2|`},
		},
	},
	{
		ID:      "18",
		Title:   "Ch 18. Temperature, Heat, and the First Law",
		Summary: "Thermodynamics basics: temperature scales, heat transfer, and the first law of thermodynamics.",
		Formulas: []Formula{
			{Name: "Linear Expansion", LaTeX: `\Delta L = L_0 \alpha \Delta T`},
			{Name: "Heat Transfer", LaTeX: `Q = mc\Delta T`},
			{Name: "First Law", LaTeX: `\Delta E_{int} = Q - W`},
		},
	},
	{
		ID:      "19",
		Title:   "Ch 19. The Kinetic Theory of Gases",
		Summary: "Molecular interpretation of temperature and pressure. Ideal gas law and kinetic energy.",
		Formulas: []Formula{
			{Name: "Ideal Gas Law", LaTeX: `PV = nRT`},
			{Name: "Kinetic Energy", LaTeX: `K_{avg} = \frac{3}{2}kT`},
			{Name: "RMS Speed", LaTeX: `v_{rms} = \sqrt{\frac{3kT}{m}}`},
		},
	},
	{
		ID:      "20",
		Title:   "Ch 20. Entropy and the Second Law",
		Summary: "Entropy, reversible/irreversible processes, and the second law of thermodynamics.",
		Formulas: []Formula{
			{Name: "Entropy Change", LaTeX: `\Delta S = \int \frac{dQ}{T}`},
			{Name: "Carnot Efficiency", LaTeX: `e = 1 - \frac{T_C}{T_H}`},
		},
	},
	{
		ID:      "21",
		Title:   "Ch 21. Coulomb's Law",
		Summary: "Electric charge, Coulomb's law, and electric fields.",
		Formulas: []Formula{
			{Name: "Coulomb's Law", LaTeX: `F = k\frac{|q_1 q_2|}{r^2}`},
			{Name: "Electric Field", LaTeX: `E = \frac{F}{q} = k\frac{Q}{r^2}`},
		},
	},
	{
		ID:      "22",
		Title:   "Ch 22. Electric Fields",
		Summary: "Electric field lines, Gauss's law, and applications.",
		Formulas: []Formula{
			{Name: "Gauss's Law", LaTeX: `\Phi_E = \oint \vec{E} \cdot d\vec{A} = \frac{Q_{enc}}{\epsilon_0}`},
			{Name: "Field (Infinite Sheet)", LaTeX: `E = \frac{\sigma}{2\epsilon_0}`},
		},
	},
	{
		ID:      "23",
		Title:   "Ch 23. Electric Potential",
		Summary: "Electric potential energy and electric potential.",
		Formulas: []Formula{
			{Name: "Electric Potential", LaTeX: `V = \frac{U}{q} = k\frac{Q}{r}`},
			{Name: "Potential Difference", LaTeX: `\Delta V = -\int \vec{E} \cdot d\vec{l}`},
		},
	},
	{
		ID:      "24",
		Title:   "Ch 24. Capacitance",
		Summary: "Capacitors, capacitance, and energy storage.",
		Formulas: []Formula{
			{Name: "Capacitance", LaTeX: `C = \frac{Q}{V}`},
			{Name: "Parallel Plate", LaTeX: `C = \epsilon_0 \frac{A}{d}`},
			{Name: "Energy Stored", LaTeX: `U = \frac{1}{2}CV^2 = \frac{1}{2}QV`},
		},
	},
	{
		ID:      "25",
		Title:   "Ch 25. Current and Resistance",
		Summary: "Electric current, resistance, and Ohm's law.",
		Formulas: []Formula{
			{Name: "Current", LaTeX: `I = \frac{dQ}{dt}`},
			{Name: "Ohm's Law", LaTeX: `V = IR`},
			{Name: "Resistance", LaTeX: `R = \rho \frac{L}{A}`},
			{Name: "Power", LaTeX: `P = IV = I^2R = \frac{V^2}{R}`},
		},
	},
	{
		ID:      "26",
		Title:   "Ch 26. Circuits",
		Summary: "DC circuits, Kirchhoff's laws, and RC circuits.",
		Formulas: []Formula{
			{Name: "Series Resistance", LaTeX: `R_{eq} = R_1 + R_2 + ...`},
			{Name: "Parallel Resistance", LaTeX: `\frac{1}{R_{eq}} = \frac{1}{R_1} + \frac{1}{R_2} + ...`},
			{Name: "RC Time Constant", LaTeX: `\tau = RC`},
		},
	},
	{
		ID:      "27",
		Title:   "Ch 27. Magnetic Fields",
		Summary: "Magnetic fields, forces on moving charges, and magnetic materials.",
		Formulas: []Formula{
			{Name: "Magnetic Force", LaTeX: `\vec{F} = q\vec{v} \times \vec{B}`},
			{Name: "Force on Wire", LaTeX: `F = ILB\sin\theta`},
			{Name: "Cyclotron Radius", LaTeX: `r = \frac{mv}{qB}`},
		},
	},
	{
		ID:      "28",
		Title:   "Ch 28. Magnetic Fields Due to Currents",
		Summary: "Biot-Savart law, Ampère's law, and magnetic fields from currents.",
		Formulas: []Formula{
			{Name: "Biot-Savart Law", LaTeX: `d\vec{B} = \frac{\mu_0}{4\pi}\frac{Id\vec{l} \times \hat{r}}{r^2}`},
			{Name: "Field (Long Wire)", LaTeX: `B = \frac{\mu_0 I}{2\pi r}`},
			{Name: "Ampère's Law", LaTeX: `\oint \vec{B} \cdot d\vec{l} = \mu_0 I_{enc}`},
		},
	},
	{
		ID:      "29",
		Title:   "Ch 29. Induction and Inductance",
		Summary: "Faraday's law, Lenz's law, and inductance.",
		Formulas: []Formula{
			{Name: "Faraday's Law", LaTeX: `\mathcal{E} = -\frac{d\Phi_B}{dt}`},
			{Name: "Inductance", LaTeX: `L = \frac{\Phi_B}{I}`},
			{Name: "Self-Induced EMF", LaTeX: `\mathcal{E}_L = -L\frac{dI}{dt}`},
			{Name: "Energy Stored", LaTeX: `U = \frac{1}{2}LI^2`},
		},
	},
	{
		ID:      "30",
		Title:   "Ch 30. Electromagnetic Oscillations",
		Summary: "LC circuits, RLC circuits, and AC circuits.",
		Formulas: []Formula{
			{Name: "LC Frequency", LaTeX: `\omega = \frac{1}{\sqrt{LC}}`},
			{Name: "Capacitive Reactance", LaTeX: `X_C = \frac{1}{\omega C}`},
			{Name: "Inductive Reactance", LaTeX: `X_L = \omega L`},
		},
	},
	{
		ID:      "31",
		Title:   "Ch 31. Electromagnetic Waves",
		Summary: "Maxwell's equations and electromagnetic wave propagation.",
		Formulas: []Formula{
			{Name: "Wave Speed", LaTeX: `c = \frac{1}{\sqrt{\mu_0\epsilon_0}}`},
			{Name: "Intensity", LaTeX: `I = \frac{E_0^2}{2\mu_0 c}`},
			{Name: "Radiation Pressure", LaTeX: `p_r = \frac{I}{c}`},
		},
	},
	{
		ID:      "32",
		Title:   "Ch 32. Images",
		Summary: "Reflection, refraction, and image formation by mirrors and lenses.",
		Formulas: []Formula{
			{Name: "Mirror Equation", LaTeX: `\frac{1}{f} = \frac{1}{d_o} + \frac{1}{d_i}`},
			{Name: "Magnification", LaTeX: `m = -\frac{d_i}{d_o} = \frac{h_i}{h_o}`},
			{Name: "Snell's Law", LaTeX: `n_1\sin\theta_1 = n_2\sin\theta_2`},
		},
	},
	{
		ID:      "33",
		Title:   "Ch 33. Interference",
		Summary: "Wave interference, Young's double-slit experiment, and thin films.",
		Formulas: []Formula{
			{Name: "Double-Slit (Bright)", LaTeX: `d\sin\theta = m\lambda`},
			{Name: "Double-Slit (Dark)", LaTeX: `d\sin\theta = (m + \frac{1}{2})\lambda`},
			{Name: "Thin Film", LaTeX: `2nt = m\lambda`},
		},
	},
	{
		ID:      "34",
		Title:   "Ch 34. Diffraction and Polarization",
		Summary: "Single-slit diffraction, diffraction gratings, and polarization.",
		Formulas: []Formula{
			{Name: "Single-Slit (Dark)", LaTeX: `a\sin\theta = m\lambda`},
			{Name: "Grating", LaTeX: `d\sin\theta = m\lambda`},
			{Name: "Malus's Law", LaTeX: `I = I_0\cos^2\theta`},
		},
	},
}
