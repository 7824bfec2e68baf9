package asset

// DefaultPage is the built-in page description used when no page file is configured
const DefaultPage = `
title: "Mara Quill"
logo: "MQ"

nav:
  - { label: "About", target: "about" }
  - { label: "Projects", target: "projects" }
  - { label: "Contact", target: "contact" }

hero:
  headline: "Building calm software for noisy systems"
  tagline: "Infrastructure engineer, terminal enthusiast, occasional typographer."
  cta: { label: "See my work", target: "projects" }

sections:
  - id: about
    title: "About"
    fade_in: true
    body:
      - "I design and operate event-driven services: queues, schedulers, and the small utilities that keep them honest."
      - "Most of my time goes into making systems predictable under load, and making their failure modes boring."

  - id: projects
    title: "Projects"
    fade_in: true
    cards:
      - title: "tidewater"
        body: "Backpressure-aware job queue with per-tenant fairness."
        tags: [go, queues]
      - title: "lanternfish"
        body: "Terminal dashboard for tracing slow requests across services."
        tags: [tui, tracing]
      - title: "quietpath"
        body: "Debounced config propagation for large fleets."
        tags: [config, fleet]
      - title: "ironbark"
        body: "Append-only audit log with verifiable checkpoints."
        tags: [storage]
      - title: "mothlight"
        body: "Adaptive rate limiter tuned from live latency."
        tags: [limits, control]
      - title: "saltmarsh"
        body: "Schema migration runner that plans before it touches anything."
        tags: [sql, tooling]

  - id: contact
    title: "Contact"
    fade_in: true
    body:
      - "Open to consulting on reliability and platform work."
      - "mara@quill.example"

footer: "Built for the terminal. Scroll with the wheel, arrows, or PgUp/PgDn. Tab to focus, q to quit."
`
