package common

// 0.1.0  2025.09.02   propose/schedule staging over two pools
// 0.2.0  2025.10.14   bulk staging, dashboard, committed-pool diagnostics
// 0.3.0  2025.11.20   startup reconciliation, optional Committed category
const TXSTAGE_VERSION = "0.3.0"
