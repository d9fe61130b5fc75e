package handler

// APIV1Prefix is the base path for the public HTTP API v1.
const APIV1Prefix = "/api/v1"
